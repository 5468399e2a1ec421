package services

import (
	"context"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/app/repositories"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/helpers"
	"github.com/bandroom/backend/internal/pkg/validation"
)

// StudentService handles student roster management
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, filter dto.StudentFilterRequest) ([]*models.Student, dto.PaginationInfo, error)
	Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	students *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(students *repositories.StudentRepository) StudentService {
	return &studentService{students: students}
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if !models.IsValidInstrument(req.Instrument) {
		return nil, apperrors.NewBadRequestError("unknown instrument: " + req.Instrument)
	}
	if !validation.CompiledPatterns.Username.MatchString(req.Username) {
		return nil, apperrors.NewBadRequestError("invalid username")
	}

	student := &models.Student{
		Name:       req.Name,
		Username:   req.Username,
		DOB:        req.DOB,
		Instrument: models.Instrument(req.Instrument),
		ImageURL:   req.ImageURL,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

func (s *studentService) List(ctx context.Context, filter dto.StudentFilterRequest) ([]*models.Student, dto.PaginationInfo, error) {
	if filter.Instrument != "" && !models.IsValidInstrument(filter.Instrument) {
		return nil, dto.PaginationInfo{}, apperrors.NewBadRequestError("unknown instrument: " + filter.Instrument)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	students, total, err := s.students.List(ctx, filter.Instrument, filter.Search, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return students, helpers.NewPaginationInfo(total, filter.Page, filter.PageSize), nil
}

func (s *studentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Username != nil {
		if !validation.CompiledPatterns.Username.MatchString(*req.Username) {
			return nil, apperrors.NewBadRequestError("invalid username")
		}
		student.Username = *req.Username
	}
	if req.DOB != nil {
		student.DOB = *req.DOB
	}
	if req.Instrument != nil {
		if !models.IsValidInstrument(*req.Instrument) {
			return nil, apperrors.NewBadRequestError("unknown instrument: " + *req.Instrument)
		}
		student.Instrument = models.Instrument(*req.Instrument)
	}
	if req.ImageURL != nil {
		student.ImageURL = req.ImageURL
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}
