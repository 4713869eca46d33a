package service

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/repository"
	"fmt"
	"strings"
)

type MentorService struct {
	MentorRepo  *repository.MentorRepository
	ProblemRepo *repository.ProblemRepository
	aiService   *AIService
}

func NewMentorService(mentorRepo *repository.MentorRepository, problemRepo *repository.ProblemRepository, aiService *AIService) *MentorService {
	return &MentorService{
		MentorRepo:  mentorRepo,
		ProblemRepo: problemRepo,
		aiService:   aiService,
	}
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

type AskResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source"` // catalog, llm or simulated
}

// Ask answers a free-form question, seeding the model with catalog context
// when the question matches known problems. Without an API key configured
// the answer is simulated; the mentor contract is only "produces a string".
func (s *MentorService) Ask(userID uint, question string) (*AskResponse, error) {
	var context string
	source := "llm"

	problems, err := s.ProblemRepo.SearchByText(question, 3)
	if err == nil && len(problems) > 0 {
		source = "catalog"
		for _, p := range problems {
			context += fmt.Sprintf("Problem: %s (%s, pattern: %s)\n", p.Title, p.Difficulty, p.Pattern)
		}
	}

	var answer string
	if s.aiService.Configured() {
		answer, err = s.aiService.Chat(question, context)
		if err != nil {
			return nil, err
		}
	} else {
		answer = s.simulate(question, problems)
		source = "simulated"
	}

	exchange := &model.MentorExchange{
		UserID:   userID,
		Question: question,
		Answer:   answer,
		Source:   source,
	}
	if err := s.MentorRepo.Create(exchange); err != nil {
		return nil, err
	}

	return &AskResponse{Answer: answer, Source: source}, nil
}

func (s *MentorService) GetHistory(userID uint, limit int) ([]model.MentorExchange, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.MentorRepo.FindByUser(userID, limit)
}

func (s *MentorService) simulate(question string, matched []model.Problem) string {
	if len(matched) > 0 {
		names := make([]string, 0, len(matched))
		for _, p := range matched {
			names = append(names, p.Title)
		}
		return fmt.Sprintf("Good question. Before diving in, revisit %s and think about which pattern applies. Work a small example by hand first, then generalize.", strings.Join(names, ", "))
	}
	return "Think about what data structure gives you the lookup or ordering you need, sketch the brute force first, then ask what repeated work you can cache away."
}
