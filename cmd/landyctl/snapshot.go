package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

// portfolioSnapshot is the YAML shape accepted by `landyctl evaluate`.
type portfolioSnapshot struct {
	Properties []propertySnapshot `yaml:"properties"`
}

type propertySnapshot struct {
	Address             string         `yaml:"address"`
	HeatingType         string         `yaml:"heating_type"`
	Category            string         `yaml:"category"`
	Compliance          statusSnapshot `yaml:"compliance"`
	NotApplicable       statusSnapshot `yaml:"not_applicable"`
	MouldCheckPassed    *bool          `yaml:"mould_check_passed"`
	WindowRestrictorsOk *bool          `yaml:"window_restrictors_ok"`
}

type statusSnapshot struct {
	GasSafety           bool `yaml:"gas_safety"`
	EICR                bool `yaml:"eicr"`
	EPC                 bool `yaml:"epc"`
	RentersRightsAct    bool `yaml:"renters_rights_act"`
	TenantInfoStatement bool `yaml:"tenant_info_statement"`
}

func (s statusSnapshot) status() models.ComplianceStatus {
	return models.ComplianceStatus{
		GasSafety:           s.GasSafety,
		EICR:                s.EICR,
		EPC:                 s.EPC,
		RentersRightsAct:    s.RentersRightsAct,
		TenantInfoStatement: s.TenantInfoStatement,
	}
}

func loadSnapshot(path string) ([]models.Property, error) {
	if path == "-" {
		return parseSnapshot(os.Stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return parseSnapshot(bytes.NewReader(raw))
}

// parseSnapshot decodes a portfolio and validates each property the way the
// API does on creation. A flag and its N/A override may not both be set.
func parseSnapshot(r io.Reader) ([]models.Property, error) {
	var snap portfolioSnapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	properties := make([]models.Property, 0, len(snap.Properties))
	for i, ps := range snap.Properties {
		p, err := compliance.NewProperty("landyctl", ps.Address, models.HeatingType(ps.HeatingType), models.PropertyCategory(ps.Category))
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i+1, err)
		}
		p.ID = fmt.Sprintf("snapshot-%d", i+1)
		p.Compliance = ps.Compliance.status()
		p.NotApplicable = ps.NotApplicable.status()
		for _, field := range models.ComplianceFields {
			if p.Compliance.Get(field) && p.NotApplicable.Get(field) {
				return nil, fmt.Errorf("property %d: %w", i+1, appErrors.Clone(appErrors.ErrValidation,
					fmt.Sprintf("%s is both set and not applicable", field)))
			}
		}
		p.MouldCheckPassed = ps.MouldCheckPassed
		p.WindowRestrictorsOk = ps.WindowRestrictorsOk
		properties = append(properties, p)
	}
	return properties, nil
}
