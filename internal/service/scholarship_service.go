package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "scholarhub/internal/errors"
	"scholarhub/internal/model"
	"scholarhub/internal/repository"
)

// Listing is a page of scholarships and where it came from.
type Listing struct {
	Scholarships []model.Scholarship
	// Fallback is set when the static catalogue was served instead of the store.
	Fallback bool
}

// ScholarshipService exposes scholarship listing, detail and creation.
type ScholarshipService interface {
	Top(ctx context.Context) (*Listing, error)
	All(ctx context.Context) (*Listing, error)
	// Detail returns nil without error when no scholarship has the id.
	Detail(ctx context.Context, id string) (*model.ScholarshipDetail, error)
	Create(ctx context.Context, s *model.Scholarship) (primitive.ObjectID, error)
}

type scholarshipService struct {
	repo     repository.ScholarshipRepository
	fallback bool
	log      *slog.Logger
}

// NewScholarshipService builds a ScholarshipService. With fallback enabled,
// listings degrade to the static catalogue when the store is empty or failing.
func NewScholarshipService(repo repository.ScholarshipRepository, fallback bool, log *slog.Logger) ScholarshipService {
	if log == nil {
		log = slog.Default()
	}
	return &scholarshipService{repo: repo, fallback: fallback, log: log}
}

func (s *scholarshipService) Top(ctx context.Context) (*Listing, error) {
	items, err := s.repo.Top(ctx, repository.TopLimit)
	return s.listing(ctx, "top", items, err, func(all []model.Scholarship) []model.Scholarship {
		return RankTop(all, repository.TopLimit)
	})
}

func (s *scholarshipService) All(ctx context.Context) (*Listing, error) {
	items, err := s.repo.List(ctx)
	return s.listing(ctx, "all", items, err, nil)
}

func (s *scholarshipService) listing(ctx context.Context, name string, items []model.Scholarship, err error, shape func([]model.Scholarship) []model.Scholarship) (*Listing, error) {
	if err == nil && len(items) > 0 {
		return &Listing{Scholarships: items}, nil
	}
	if !s.fallback {
		if err != nil {
			return nil, err
		}
		return &Listing{Scholarships: []model.Scholarship{}}, nil
	}

	if err != nil {
		s.log.WarnContext(ctx, "serving fallback scholarships", "listing", name, "error", err)
	} else {
		s.log.InfoContext(ctx, "serving fallback scholarships", "listing", name, "reason", "empty store")
	}
	data := FallbackScholarships()
	if shape != nil {
		data = shape(data)
	}
	return &Listing{Scholarships: data, Fallback: true}, nil
}

func (s *scholarshipService) Detail(ctx context.Context, id string) (*model.ScholarshipDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	detail, err := s.repo.FindDetail(ctx, oid)
	if err == nil {
		return detail, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if s.fallback {
		if sch, ok := fallbackByID(oid); ok {
			return &model.ScholarshipDetail{Scholarship: sch, Reviews: []model.Review{}}, nil
		}
	}
	return nil, nil
}

func (s *scholarshipService) Create(ctx context.Context, sch *model.Scholarship) (primitive.ObjectID, error) {
	return s.repo.Create(ctx, sch)
}

// RankTop orders by application fee ascending, newest id first among equal
// fees, and keeps at most limit entries. It matches TopOptions for data that
// never went through the store.
func RankTop(items []model.Scholarship, limit int) []model.Scholarship {
	out := make([]model.Scholarship, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ApplicationFees != out[j].ApplicationFees {
			return out[i].ApplicationFees < out[j].ApplicationFees
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) > 0
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
