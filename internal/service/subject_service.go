package service

import (
	"studyboard/internal/contract"
	"studyboard/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type SubjectService struct {
	SubjectRepo SubjectRepository
}

func NewSubjectService(subjectRepo SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

func (s *SubjectService) ListSubjects() ([]*contract.SubjectResponse, apierror.ErrorResponse) {
	subjects, err := s.SubjectRepo.FindAll()
	if err != nil {
		log.Errorf("failed to list subjects: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.SubjectResponse, len(subjects))
	for i, subject := range subjects {
		resp[i] = &contract.SubjectResponse{ID: subject.ID, Name: subject.Name}
	}
	return resp, nil
}
