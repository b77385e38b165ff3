package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

type noticeRepository interface {
	ListByTenancy(ctx context.Context, tenancyID string) ([]models.LegalNotice, error)
	FindByID(ctx context.Context, id string) (*models.LegalNotice, error)
	Create(ctx context.Context, notice *models.LegalNotice) error
	UpdateStatus(ctx context.Context, id string, status models.NoticeStatus) error
}

// NoticeService drafts Section 8 and Section 13 notices and tracks their
// lifecycle.
type NoticeService struct {
	repo       noticeRepository
	tenancies  tenancyFinder
	properties propertyFinder
	catalogue  *compliance.Catalogue
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewNoticeService constructs a NoticeService. A nil catalogue falls back to
// the embedded one.
func NewNoticeService(repo noticeRepository, tenancies tenancyFinder, properties propertyFinder, catalogue *compliance.Catalogue, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if catalogue == nil {
		catalogue = compliance.DefaultCatalogue()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{
		repo:       repo,
		tenancies:  tenancies,
		properties: properties,
		catalogue:  catalogue,
		metrics:    metrics,
		validator:  validate,
		logger:     logger,
		now:        time.Now,
	}
}

// Catalogue exposes the ground catalogue used for drafting.
func (s *NoticeService) Catalogue() *compliance.Catalogue {
	return s.catalogue
}

// List returns the notices of a tenancy with their effective status.
func (s *NoticeService) List(ctx context.Context, ownerID, tenancyID string) ([]dto.NoticeView, error) {
	if _, err := ownedTenancy(ctx, s.tenancies, s.properties, ownerID, tenancyID); err != nil {
		return nil, err
	}
	notices, err := s.repo.ListByTenancy(ctx, tenancyID)
	if err != nil {
		return nil, internalError(err, "failed to list notices")
	}
	at := s.now()
	views := make([]dto.NoticeView, 0, len(notices))
	for _, n := range notices {
		views = append(views, noticeView(n, at))
	}
	return views, nil
}

// Draft validates the wizard input and saves a draft notice.
func (s *NoticeService) Draft(ctx context.Context, ownerID, tenancyID string, req dto.DraftNoticeRequest) (*dto.DraftNoticeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid notice payload")
	}
	tenancy, err := ownedTenancy(ctx, s.tenancies, s.properties, ownerID, tenancyID)
	if err != nil {
		return nil, err
	}
	noticeDate, err := parseDate(req.NoticeDate)
	if err != nil {
		return nil, invalidPayload(err, "invalid notice date")
	}
	grounds := make([]string, 0, len(req.Grounds))
	for _, g := range req.Grounds {
		if code := strings.TrimSpace(g); code != "" {
			grounds = append(grounds, code)
		}
	}

	s.metrics.RecordEvaluation(EvaluationNotice)
	drafted, err := compliance.DraftNotice(s.catalogue, compliance.NoticeRequest{
		Tenancy:    *tenancy,
		NoticeType: models.NoticeType(req.NoticeType),
		Grounds:    grounds,
		NoticeDate: noticeDate,
		Notes:      trimOptional(req.Notes),
	})
	if err != nil {
		s.metrics.RecordRejection(EvaluationNotice, appErrors.FromError(err).Code)
		return nil, err
	}
	notice := drafted.Notice
	if err := s.repo.Create(ctx, &notice); err != nil {
		return nil, internalError(err, "failed to save notice")
	}
	s.logger.Info("notice drafted",
		zap.String("notice_id", notice.ID),
		zap.String("tenancy_id", tenancyID),
		zap.String("notice_type", string(notice.NoticeType)),
		zap.Time("expiry_date", notice.ExpiryDate),
	)
	return &dto.DraftNoticeResponse{Notice: noticeView(notice, s.now()), Warnings: drafted.Warnings}, nil
}

// Advance records that a notice was served or actioned.
func (s *NoticeService) Advance(ctx context.Context, ownerID, noticeID string, req dto.NoticeStatusRequest) (*dto.NoticeView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid notice status payload")
	}
	notice, err := s.repo.FindByID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "notice not found")
		}
		return nil, internalError(err, "failed to load notice")
	}
	if _, err := ownedTenancy(ctx, s.tenancies, s.properties, ownerID, notice.TenancyID); err != nil {
		return nil, renameNotFound(err, "notice not found")
	}
	advanced, err := compliance.AdvanceNotice(*notice, models.NoticeStatus(req.Status))
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, noticeID, advanced.Status); err != nil {
		return nil, internalError(err, "failed to update notice")
	}
	s.logger.Info("notice status changed", zap.String("notice_id", noticeID), zap.String("status", string(advanced.Status)))
	view := noticeView(advanced, s.now())
	return &view, nil
}

func noticeView(n models.LegalNotice, at time.Time) dto.NoticeView {
	return dto.NoticeView{LegalNotice: n, EffectiveStatus: compliance.EffectiveStatus(n, at)}
}
