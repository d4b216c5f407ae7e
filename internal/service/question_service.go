package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/model"
	"github.com/lshigami/questionbank/internal/monitoring"
	"github.com/lshigami/questionbank/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// questionStartLen is the number of characters kept in a listing blurb.
const questionStartLen = 40

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.QuestionRequest) (dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id uint) (dto.QuestionResponse, error)
	GetQuestionIndex(ctx context.Context) (*dto.QuestionIndexResponse, error)
	UpdateQuestion(ctx context.Context, id uint, req dto.QuestionRequest) (dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type questionService struct {
	db         *gorm.DB
	repo       repository.QuestionRepository
	optionRepo repository.MCOptionRepository
	rubricRepo repository.RubricRepository
	setupRepo  repository.SetupRepository
}

func NewQuestionService(
	db *gorm.DB,
	repo repository.QuestionRepository,
	optionRepo repository.MCOptionRepository,
	rubricRepo repository.RubricRepository,
	setupRepo repository.SetupRepository,
) QuestionService {
	return &questionService{
		db:         db,
		repo:       repo,
		optionRepo: optionRepo,
		rubricRepo: rubricRepo,
		setupRepo:  setupRepo,
	}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.QuestionRequest) (dto.QuestionResponse, error) {
	qType := model.QuestionType(req.Type)
	if err := s.validate(ctx, qType, req, nil); err != nil {
		return nil, err
	}

	question := model.Question{Type: qType}
	applyRequest(&question, req)
	if err := s.repo.Create(ctx, &question); err != nil {
		return nil, storeError(EntityQuestion, "create", err)
	}
	monitoring.QuestionsCreated.WithLabelValues(string(qType)).Inc()
	log.Info().Uint("id", question.ID).Str("type", string(qType)).Msg("Question created")

	return s.toResponse(ctx, &question)
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityQuestion, id, "find", err)
	}
	return s.toResponse(ctx, question)
}

func (s *questionService) GetQuestionIndex(ctx context.Context) (*dto.QuestionIndexResponse, error) {
	index := make(map[model.QuestionType][]dto.QuestionSummary, len(model.QuestionTypes))
	for _, qType := range model.QuestionTypes {
		questions, err := s.repo.FindByType(ctx, qType)
		if err != nil {
			return nil, storeError(EntityQuestion, "list", err)
		}
		summaries := make([]dto.QuestionSummary, 0, len(questions))
		for _, q := range questions {
			summaries = append(summaries, dto.QuestionSummary{ID: q.ID, QuestionStart: questionStart(q.QuestionText)})
		}
		index[qType] = summaries
	}
	return &dto.QuestionIndexResponse{
		MC:  index[model.QuestionTypeMC],
		SA:  index[model.QuestionTypeSA],
		SQL: index[model.QuestionTypeSQL],
	}, nil
}

// UpdateQuestion replaces question_text, points, setup and answer. The type
// must match the stored one.
func (s *questionService) UpdateQuestion(ctx context.Context, id uint, req dto.QuestionRequest) (dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityQuestion, id, "find", err)
	}
	if model.QuestionType(req.Type) != question.Type {
		log.Warn().Uint("id", id).Str("from", string(question.Type)).Str("to", req.Type).Msg("Question type change rejected")
		return nil, newValidationError(KindTypeImmutable, "Type cannot be changed.")
	}
	if err := s.validate(ctx, question.Type, req, question.SetupID); err != nil {
		return nil, err
	}

	applyRequest(question, req)
	if err := s.repo.Update(ctx, question); err != nil {
		return nil, lookupError(EntityQuestion, id, "update", err)
	}
	return s.toResponse(ctx, question)
}

// DeleteQuestion removes the question and, in the same transaction, the
// options (mc) or rubrics (sa) it owns. Setups are never removed.
func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(EntityQuestion, id, "find", err)
	}

	var (
		table   string
		removed int64
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
			return err
		}
		var err error
		switch question.Type {
		case model.QuestionTypeMC:
			table = model.MCOption{}.TableName()
			removed, err = s.optionRepo.WithTx(tx).DeleteByQuestionID(ctx, id)
		case model.QuestionTypeSA:
			table = model.Rubric{}.TableName()
			removed, err = s.rubricRepo.WithTx(tx).DeleteByQuestionID(ctx, id)
		}
		return err
	})
	if err != nil {
		return lookupError(EntityQuestion, id, "delete", err)
	}

	if table != "" {
		monitoring.CascadeDeletedRows.WithLabelValues(table).Add(float64(removed))
		log.Info().Uint("id", id).Str("table", table).Int64("rows", removed).Msg("Question deleted with children")
	}
	return nil
}

// validate applies the question rules in order: type, setup presence,
// question text, points, answer, setup existence. Existence is only checked
// for sql questions pointing at a setup other than current, so a question
// keeps working after the setup it references is deleted.
func (s *questionService) validate(ctx context.Context, qType model.QuestionType, req dto.QuestionRequest, current *uint) error {
	verr := checkFields(qType, req)
	if verr == nil && qType.RequiresSetup() && !sameSetup(req.Setup, current) {
		if _, err := s.setupRepo.FindByID(ctx, *req.Setup); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return storeError(EntitySetup, "find", err)
			}
			verr = newValidationError(KindUnknownSetup, "Setup %d does not exist.", *req.Setup)
		}
	}
	if verr != nil {
		log.Warn().Str("kind", string(verr.Kind)).Str("type", req.Type).Msg(verr.Message)
		return verr
	}
	return nil
}

func sameSetup(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func checkFields(qType model.QuestionType, req dto.QuestionRequest) *ValidationError {
	if !qType.Valid() {
		return newValidationError(KindInvalidType, "Question type must be sql, sa, or mc.")
	}
	if qType.RequiresSetup() && req.Setup == nil {
		return newValidationError(KindMissingSetup, "Setup is required for SQL questions.")
	}
	if isBlank(req.QuestionText) {
		return newValidationError(KindBlankField, "Blank or white space entries are not allowed.")
	}
	if req.Points <= 0 {
		return newValidationError(KindInvalidPoints, "Point value must be greater than 0.")
	}
	if qType.HasAnswer() && (req.Answer == nil || isBlank(*req.Answer)) {
		return newValidationError(KindBlankField, "Answer must be filled in for this question.")
	}
	return nil
}

// applyRequest copies the mutable fields. mc questions never store an answer.
func applyRequest(q *model.Question, req dto.QuestionRequest) {
	q.QuestionText = req.QuestionText
	q.Points = req.Points
	q.SetupID = req.Setup
	q.Answer = nil
	if q.Type.HasAnswer() {
		answer := *req.Answer
		q.Answer = &answer
	}
}

func (s *questionService) toResponse(ctx context.Context, q *model.Question) (dto.QuestionResponse, error) {
	base := dto.QuestionBase{
		ID:           q.ID,
		Type:         string(q.Type),
		QuestionText: q.QuestionText,
		Points:       q.Points,
	}

	switch q.Type {
	case model.QuestionTypeMC:
		options, err := s.optionRepo.FindByQuestionID(ctx, q.ID)
		if err != nil {
			return nil, storeError(EntityMCOption, "list", err)
		}
		resp := &dto.MCQuestionResponse{
			QuestionBase: base,
			Setup:        q.SetupID,
			TrueOptions:  make([]dto.MCOptionResponse, 0),
			FalseOptions: make([]dto.MCOptionResponse, 0),
		}
		for i := range options {
			var option dto.MCOptionResponse
			if err := copier.Copy(&option, &options[i]); err != nil {
				return nil, err
			}
			if option.IsTrue {
				resp.TrueOptions = append(resp.TrueOptions, option)
			} else {
				resp.FalseOptions = append(resp.FalseOptions, option)
			}
		}
		return resp, nil

	case model.QuestionTypeSA:
		rubrics, err := s.rubricRepo.FindByQuestionID(ctx, q.ID)
		if err != nil {
			return nil, storeError(EntityRubric, "list", err)
		}
		resp := &dto.SAQuestionResponse{
			QuestionBase: base,
			Setup:        q.SetupID,
			Answer:       deref(q.Answer),
			Rubrics:      make([]dto.RubricResponse, 0, len(rubrics)),
		}
		for i := range rubrics {
			var rubric dto.RubricResponse
			if err := copier.Copy(&rubric, &rubrics[i]); err != nil {
				return nil, err
			}
			resp.Rubrics = append(resp.Rubrics, rubric)
		}
		return resp, nil

	case model.QuestionTypeSQL:
		resp := &dto.SQLQuestionResponse{QuestionBase: base, Answer: deref(q.Answer)}
		if q.SetupID != nil {
			resp.Setup = *q.SetupID
		}
		return resp, nil
	}
	return nil, fmt.Errorf("question %d has unknown type %q", q.ID, q.Type)
}

func questionStart(text string) string {
	runes := []rune(text)
	if len(runes) <= questionStartLen {
		return text
	}
	return string(runes[:questionStartLen])
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
