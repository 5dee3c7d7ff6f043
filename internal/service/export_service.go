package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prernajain1224/MHPS-Website/internal/models"
	"github.com/prernajain1224/MHPS-Website/pkg/export"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

// ExportFamily names an exportable content family.
type ExportFamily string

const (
	ExportFamilyPress    ExportFamily = "press"
	ExportFamilyEvents   ExportFamily = "events"
	ExportFamilyArticles ExportFamily = "articles"
)

// ExportFormat names a rendering format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type exportPressRepository interface {
	ListAll(ctx context.Context, parentID string) ([]models.PressItem, error)
}

type exportEventRepository interface {
	ListAll(ctx context.Context, parentID string) ([]models.Event, error)
}

type exportArticleRepository interface {
	ListAll(ctx context.Context, parentID string) ([]models.Article, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult carries a rendered export ready to stream.
type ExportResult struct {
	Payload     []byte
	ContentType string
	Filename    string
}

// ExportService renders content listings as downloadable CSV or PDF
// files.
type ExportService struct {
	press    exportPressRepository
	events   exportEventRepository
	articles exportArticleRepository
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(press exportPressRepository, events exportEventRepository, articles exportArticleRepository, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{press: press, events: events, articles: articles, csv: csv, pdf: pdf, logger: logger}
}

// Generate builds the dataset for the requested family and renders it in
// the requested format.
func (s *ExportService) Generate(ctx context.Context, family, format, indexID string) (*ExportResult, error) {
	var (
		dataset export.Dataset
		title   string
		err     error
	)
	switch ExportFamily(strings.ToLower(family)) {
	case ExportFamilyPress:
		dataset, err = s.pressDataset(ctx, indexID)
		title = "Press"
	case ExportFamilyEvents:
		dataset, err = s.eventDataset(ctx, indexID)
		title = "Events"
	case ExportFamilyArticles:
		dataset, err = s.articleDataset(ctx, indexID)
		title = "Articles"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export family %q", family))
	}
	if err != nil {
		return nil, err
	}

	stamp := time.Now().UTC().Format("20060102")
	switch ExportFormat(strings.ToLower(format)) {
	case ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			Payload:     payload,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s-%s.csv", strings.ToLower(title), stamp),
		}, nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			Payload:     payload,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s-%s.pdf", strings.ToLower(title), stamp),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export format %q", format))
	}
}

func (s *ExportService) pressDataset(ctx context.Context, indexID string) (export.Dataset, error) {
	items, err := s.press.ListAll(ctx, indexID)
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press items")
	}
	dataset := export.Dataset{Headers: []string{"Date", "Kind", "Title", "Authors", "Featured"}}
	for _, item := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":     item.ItemDate.Format("2006-01-02"),
			"Kind":     string(item.Kind),
			"Title":    item.ShortTitle,
			"Authors":  item.AuthorNames,
			"Featured": fmt.Sprintf("%t", item.IsFeatured),
		})
	}
	return dataset, nil
}

func (s *ExportService) eventDataset(ctx context.Context, indexID string) (export.Dataset, error) {
	events, err := s.events.ListAll(ctx, indexID)
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load events")
	}
	dataset := export.Dataset{Headers: []string{"Date", "Start", "End", "Title", "Type", "Format", "Location"}}
	for _, event := range events {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":     event.StartDate.Format("2006-01-02"),
			"Start":    event.StartTime,
			"End":      event.EndTime,
			"Title":    event.Title,
			"Type":     string(event.EventType),
			"Format":   string(event.EventFormat),
			"Location": event.Location,
		})
	}
	return dataset, nil
}

func (s *ExportService) articleDataset(ctx context.Context, indexID string) (export.Dataset, error) {
	articles, err := s.articles.ListAll(ctx, indexID)
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load articles")
	}
	dataset := export.Dataset{Headers: []string{"Date", "Time", "Title", "Author", "Type"}}
	for _, article := range articles {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":   article.PublishDate.Format("2006-01-02"),
			"Time":   article.PublishTime,
			"Title":  article.Title,
			"Author": article.AuthorName,
			"Type":   string(article.ArticleType),
		})
	}
	return dataset, nil
}
