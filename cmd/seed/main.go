package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"istitlaa/internal/config"
	"istitlaa/internal/model"
	"istitlaa/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	pollRepo := repository.NewPollRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	q1 := model.Question{
		ID:   uuid.New().String(),
		Text: "ما مدى رضاك عن جودة التعليم في منطقتك؟",
		Answers: []model.Answer{
			{ID: uuid.New().String(), Text: "راضٍ جداً", Points: 5},
			{ID: uuid.New().String(), Text: "راضٍ", Points: 3},
			{ID: uuid.New().String(), Text: "غير راضٍ", Points: 1},
		},
	}
	q2 := model.Question{
		ID:   uuid.New().String(),
		Text: "هل تعتقد أن المناهج الدراسية تواكب سوق العمل؟",
		Answers: []model.Answer{
			{ID: uuid.New().String(), Text: "نعم", Points: 4},
			{ID: uuid.New().String(), Text: "إلى حد ما", Points: 2},
			{ID: uuid.New().String(), Text: "لا", Points: 0},
		},
	}

	poll := &model.Poll{
		ID:          primitive.NewObjectID().Hex(),
		Title:       "استطلاع جودة التعليم",
		Description: "استطلاع حول رضا المشاركين عن جودة التعليم والمناهج الدراسية",
		Questions:   []model.Question{q1, q2},
		IsActive:    true,
	}

	pollID, err := pollRepo.Create(ctx, poll)
	if err != nil {
		log.Fatalf("Failed to seed poll: %v", err)
	}
	log.Printf("Seeded poll %s", pollID)

	responses := []*model.PollResponse{
		{
			PollID:           pollID,
			Name:             "أمل الخالدي",
			Email:            "amal@example.com",
			EmploymentStatus: "employed",
			Teaching:         "yes",
			DateOfBirth:      "1988-04-12",
			Address:          "الرياض",
			Gender:           "female",
			Responses: []model.QuestionResponse{
				{QuestionID: q1.ID, AnswerID: q1.Answers[0].ID},
				{QuestionID: q2.ID, AnswerID: q2.Answers[1].ID},
			},
		},
		{
			PollID:           pollID,
			Name:             "باسم العتيبي",
			Email:            "basim@example.com",
			EmploymentStatus: "student",
			Teaching:         "no",
			DateOfBirth:      "1996-09-30",
			Address:          "جدة",
			Gender:           "male",
			Responses: []model.QuestionResponse{
				{QuestionID: q1.ID, AnswerID: q1.Answers[1].ID},
				{QuestionID: q2.ID, AnswerID: q2.Answers[0].ID},
			},
		},
	}

	for _, response := range responses {
		if _, err := responseRepo.Create(ctx, response); err != nil {
			log.Fatalf("Failed to seed response: %v", err)
		}
	}
	log.Printf("Seeded %d responses", len(responses))
}
