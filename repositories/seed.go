package repositories

import "github.com/gbfmachado/gkpro-system/models"

// Seed data shown on a fresh install so the dashboard is not empty.

func seedGoalkeepers() []models.Goalkeeper {
	return []models.Goalkeeper{
		{
			ID:           "1",
			Name:         "Alisson Becker",
			BirthDate:    "1992-10-02",
			Photo:        "https://images.unsplash.com/photo-1518020382113-a7e8fc38eac9?q=80&w=250&auto=format&fit=crop",
			Category:     models.CategoryProfessional,
			Position:     models.PositionStarter,
			Height:       191,
			Weight:       91,
			Wingspan:     198,
			DominantFoot: models.FootRight,
			School:       "Internacional",
			ClubTime:     "4 anos",
			Notes:        "Excepcional jogo com os pés.",
		},
	}
}

func seedCoaches() []models.Coach {
	return []models.Coach{
		{
			ID:         "c1",
			Name:       "Carlos Eduardo",
			Role:       "Technical Coordinator",
			Categories: []models.Category{models.CategoryCoordinator, models.CategoryProfessional},
			Specialty:  "Metodologia de goleiros",
			License:    "CBF A",
			Status:     models.CoachActive,
		},
		{
			ID:         "c2",
			Name:       "Roberto Lima",
			Role:       "Coach Professional",
			Categories: []models.Category{models.CategoryProfessional},
			Specialty:  "Treinamento de campo",
			License:    "CBF B",
			Status:     models.CoachActive,
		},
	}
}
