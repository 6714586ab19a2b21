package service

import (
	"math"
	"sort"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/repository"
	"safemit_training_backend/internal/util"
	"safemit_training_backend/pkg/monitoring"
)

// TrainingService orchestrates the catalog, the progression engine, the
// scoring engine and certificate issuance. It owns the only mutation paths
// into a learner's ProgressRecord.
type TrainingService struct {
	Catalog      *repository.CatalogRepository
	Progress     *repository.ProgressRepository
	Certificates *CertificateService
}

func NewTrainingService(
	catalogRepo *repository.CatalogRepository,
	progressRepo *repository.ProgressRepository,
	certService *CertificateService,
) *TrainingService {
	return &TrainingService{
		Catalog:      catalogRepo,
		Progress:     progressRepo,
		Certificates: certService,
	}
}

type ModuleSummary struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Difficulty      model.Difficulty `json:"difficulty"`
	TotalDuration   int              `json:"totalDuration"`
	EnrollmentCount int              `json:"enrollmentCount"`
	LessonCount     int              `json:"lessonCount"`
	HasQuiz         bool             `json:"hasQuiz"`
}

type LessonStatus struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Duration       int     `json:"duration"`
	Order          int     `json:"order"`
	UnitCount      int     `json:"unitCount"`
	CompletionRate float64 `json:"completionRate,omitempty"`
	Completed      bool    `json:"completed"`
	Accessible     bool    `json:"accessible"`
	Current        bool    `json:"current"`
}

type ModuleOverview struct {
	Module          ModuleSummary  `json:"module"`
	Lessons         []LessonStatus `json:"lessons"`
	CompletedCount  int            `json:"completedCount"`
	ProgressPercent int            `json:"progressPercent"`
	QuizAvailable   bool           `json:"quizAvailable"`
	QuizPassed      bool           `json:"quizPassed"`
	CertificateID   string         `json:"certificateId,omitempty"`
}

type LessonView struct {
	LessonID        string            `json:"lessonId"`
	Title           string            `json:"title"`
	UnitIndex       int               `json:"unitIndex"`
	TotalUnits      int               `json:"totalUnits"`
	Unit            model.ContentUnit `json:"unit"`
	UnitCompleted   bool              `json:"unitCompleted"`
	ProgressPercent int               `json:"progressPercent"`
	LessonCompleted bool              `json:"lessonCompleted"`
	NextLessonID    string            `json:"nextLessonId,omitempty"`
}

type QuizInfo struct {
	QuizID        string         `json:"quizId"`
	PassingScore  int            `json:"passingScore"`
	TimeLimit     int            `json:"timeLimit,omitempty"` // advisory only
	QuestionCount int            `json:"questionCount"`
	Questions     []QuizQuestion `json:"questions"`
}

// QuizQuestion is the learner-facing question shape: no answer key, no
// explanation.
type QuizQuestion struct {
	ID      string             `json:"id"`
	Prompt  string             `json:"question"`
	Type    model.QuestionType `json:"type"`
	Options []string           `json:"options"`
	Points  int                `json:"points"`
}

type QuizOutcome struct {
	Result      *model.QuizResult  `json:"result"`
	Certificate *model.Certificate `json:"certificate,omitempty"`
}

type LearnerProgress struct {
	LearnerID       string `json:"learnerId"`
	CompletedCount  int    `json:"completedCount"`
	LessonCount     int    `json:"lessonCount"`
	ProgressPercent int    `json:"progressPercent"`
	QuizPercentage  int    `json:"quizPercentage,omitempty"`
	QuizPassed      bool   `json:"quizPassed"`
	Certified       bool   `json:"certified"`
}

func (s *TrainingService) ListModules() []ModuleSummary {
	modules := s.Catalog.FindAll()
	summaries := make([]ModuleSummary, len(modules))
	for i := range modules {
		summaries[i] = summarize(&modules[i])
	}
	return summaries
}

func summarize(m *model.TrainingModule) ModuleSummary {
	return ModuleSummary{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Difficulty:      m.Difficulty,
		TotalDuration:   m.TotalDuration,
		EnrollmentCount: m.EnrollmentCount,
		LessonCount:     len(m.Lessons),
		HasQuiz:         m.FinalQuiz() != nil,
	}
}

// GetModuleOverview computes the accessibility set for every lesson plus the
// learner's overall position in the module.
func (s *TrainingService) GetModuleOverview(learnerID, moduleID string) (*ModuleOverview, error) {
	module, err := s.Catalog.FindByID(moduleID)
	if err != nil {
		return nil, err
	}
	record := s.Progress.GetOrCreate(learnerID, moduleID)
	lessons := module.SortedLessons()
	accessible := AccessibleLessons(lessons, record.CompletedLessons)

	statuses := make([]LessonStatus, len(lessons))
	for i := range lessons {
		lesson := &lessons[i]
		statuses[i] = LessonStatus{
			ID:             lesson.ID,
			Title:          lesson.Title,
			Description:    lesson.Description,
			Duration:       lesson.Duration,
			Order:          lesson.Order,
			UnitCount:      len(lesson.Content),
			CompletionRate: lesson.CompletionRate,
			Completed:      record.HasCompleted(lesson.ID),
			Accessible:     accessible[lesson.ID],
			Current:        record.ActiveLessonID == lesson.ID,
		}
	}

	percent := 0
	if len(lessons) > 0 {
		percent = int(math.Round(float64(record.CompletedCount()) / float64(len(lessons)) * 100))
	}
	overview := &ModuleOverview{
		Module:          summarize(module),
		Lessons:         statuses,
		CompletedCount:  record.CompletedCount(),
		ProgressPercent: percent,
		QuizAvailable:   module.FinalQuiz() != nil && record.CompletedCount() == len(module.Lessons),
		CertificateID:   record.CertificateID,
	}
	if record.LastResult != nil {
		overview.QuizPassed = record.LastResult.Passed
	}
	return overview, nil
}

// StartLesson opens (or resumes) a lesson session for the learner. Lessons
// with unmet prerequisites are refused.
func (s *TrainingService) StartLesson(learnerID, moduleID, lessonID string) (*LessonView, error) {
	module, err := s.Catalog.FindByID(moduleID)
	if err != nil {
		return nil, err
	}
	lesson := module.LessonByID(lessonID)
	if lesson == nil {
		return nil, util.ErrLessonNotFound
	}

	record := s.Progress.GetOrCreate(learnerID, moduleID)
	if !IsAccessible(lesson, record.CompletedLessons) {
		return nil, util.ErrLessonLocked
	}

	var session *LessonSession
	if record.ActiveLessonID == lessonID {
		session, err = ResumeLessonSession(lesson, record.UnitIndex, record.CompletedUnits)
	} else {
		record.ResetActiveLesson(lessonID)
		session, err = NewLessonSession(lesson)
	}
	if err != nil {
		return nil, err
	}
	s.Progress.Save(record)
	return s.lessonView(module, lesson, session, false), nil
}

// AdvanceLesson moves the active lesson session forward one unit. When the
// session completes, the lesson is added to the completed-set exactly once
// and the active-lesson state is cleared so control returns to the module
// overview (or the next lesson, if one exists).
func (s *TrainingService) AdvanceLesson(learnerID, moduleID string) (*LessonView, error) {
	module, lesson, record, session, err := s.activeSession(learnerID, moduleID)
	if err != nil {
		return nil, err
	}

	completedNow := session.Advance()
	if completedNow {
		if record.CompleteLesson(lesson.ID) {
			monitoring.LessonCompletions.Inc()
		}
		record.ClearActiveLesson()
	} else {
		record.UnitIndex = session.UnitIndex()
		record.CompletedUnits = session.CompletedUnits()
	}
	s.Progress.Save(record)
	return s.lessonView(module, lesson, session, completedNow), nil
}

// RetreatLesson moves the active lesson session back one unit. At the first
// unit the transition guard makes this a no-op; unit completion is never
// revoked.
func (s *TrainingService) RetreatLesson(learnerID, moduleID string) (*LessonView, error) {
	module, lesson, record, session, err := s.activeSession(learnerID, moduleID)
	if err != nil {
		return nil, err
	}
	if session.Retreat() {
		record.UnitIndex = session.UnitIndex()
		s.Progress.Save(record)
	}
	return s.lessonView(module, lesson, session, false), nil
}

func (s *TrainingService) activeSession(learnerID, moduleID string) (*model.TrainingModule, *model.Lesson, *model.ProgressRecord, *LessonSession, error) {
	module, err := s.Catalog.FindByID(moduleID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	record := s.Progress.GetOrCreate(learnerID, moduleID)
	if record.ActiveLessonID == "" {
		return nil, nil, nil, nil, util.ErrNoActiveLesson
	}
	lesson := module.LessonByID(record.ActiveLessonID)
	if lesson == nil {
		return nil, nil, nil, nil, util.ErrLessonNotFound
	}
	session, err := ResumeLessonSession(lesson, record.UnitIndex, record.CompletedUnits)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return module, lesson, record, session, nil
}

func (s *TrainingService) lessonView(module *model.TrainingModule, lesson *model.Lesson, session *LessonSession, completedNow bool) *LessonView {
	view := &LessonView{
		LessonID:        lesson.ID,
		Title:           lesson.Title,
		UnitIndex:       session.UnitIndex(),
		TotalUnits:      session.TotalUnits(),
		Unit:            session.CurrentUnit(),
		UnitCompleted:   session.CompletedUnits()[session.UnitIndex()],
		ProgressPercent: session.ProgressPercent(),
		LessonCompleted: completedNow || session.Completed(),
	}
	if view.LessonCompleted {
		if next := module.NextLesson(lesson.ID); next != nil {
			view.NextLessonID = next.ID
		}
	}
	return view
}

// GetQuiz returns the module's final quiz with answer keys stripped.
func (s *TrainingService) GetQuiz(moduleID string) (*QuizInfo, error) {
	module, err := s.Catalog.FindByID(moduleID)
	if err != nil {
		return nil, err
	}
	quiz := module.FinalQuiz()
	if quiz == nil {
		return nil, util.ErrQuizNotFound
	}

	questions := make([]QuizQuestion, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		questions[i] = QuizQuestion{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Type:    q.Type,
			Options: q.Options,
			Points:  q.Points,
		}
	}
	return &QuizInfo{
		QuizID:        quiz.ID,
		PassingScore:  quiz.PassingScore,
		TimeLimit:     quiz.TimeLimit,
		QuestionCount: len(quiz.Questions),
		Questions:     questions,
	}, nil
}

// SubmitQuiz scores the learner's answers against the module's final quiz.
// The quiz is gated on completion of every lesson in the module. A passing
// result records the score and issues (or returns) the certificate; scoring
// never destroys previously recorded lesson completions.
func (s *TrainingService) SubmitQuiz(learnerID, moduleID string, answers map[string]model.Answer) (*QuizOutcome, error) {
	module, err := s.Catalog.FindByID(moduleID)
	if err != nil {
		return nil, err
	}
	quiz := module.FinalQuiz()
	if quiz == nil {
		return nil, util.ErrQuizNotFound
	}

	record := s.Progress.GetOrCreate(learnerID, moduleID)
	for i := range module.Lessons {
		if !record.HasCompleted(module.Lessons[i].ID) {
			return nil, util.ErrLessonsIncomplete
		}
	}

	result, err := ScoreQuiz(quiz, answers)
	if err != nil {
		return nil, err
	}
	record.Answers = answers
	record.LastResult = result

	outcome := &QuizOutcome{Result: result}
	if result.Passed {
		monitoring.QuizSubmissions.WithLabelValues("passed").Inc()
		cert, err := s.Certificates.Issue(learnerID, module, result)
		if err != nil {
			return nil, err
		}
		record.CertificateID = cert.ID
		outcome.Certificate = cert
	} else {
		monitoring.QuizSubmissions.WithLabelValues("failed").Inc()
	}
	s.Progress.Save(record)
	return outcome, nil
}

// GetProgress exposes the learner's raw progress record for the module.
func (s *TrainingService) GetProgress(learnerID, moduleID string) (*model.ProgressRecord, error) {
	if _, err := s.Catalog.FindByID(moduleID); err != nil {
		return nil, err
	}
	return s.Progress.GetOrCreate(learnerID, moduleID), nil
}

// ModuleLearners summarizes every learner's standing in a module for the
// facilitator roster.
func (s *TrainingService) ModuleLearners(moduleID string) ([]LearnerProgress, error) {
	module, err := s.Catalog.FindByID(moduleID)
	if err != nil {
		return nil, err
	}

	records := s.Progress.ListByModule(moduleID)
	learners := make([]LearnerProgress, 0, len(records))
	for _, record := range records {
		lp := LearnerProgress{
			LearnerID:      record.LearnerID,
			CompletedCount: record.CompletedCount(),
			LessonCount:    len(module.Lessons),
			Certified:      record.CertificateID != "",
		}
		if len(module.Lessons) > 0 {
			lp.ProgressPercent = int(math.Round(float64(record.CompletedCount()) / float64(len(module.Lessons)) * 100))
		}
		if record.LastResult != nil {
			lp.QuizPercentage = record.LastResult.Percentage
			lp.QuizPassed = record.LastResult.Passed
		}
		learners = append(learners, lp)
	}
	sort.Slice(learners, func(i, j int) bool { return learners[i].LearnerID < learners[j].LearnerID })
	return learners, nil
}
