package topic

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var seedTopics = []string{
	"Front-End",
	"Back-End",
	"DevOps",
	"General Software Engineering",
	"Databases",
}

type TopicRepository interface {
	FindAll() ([]Topic, error)
	FindByID(id uuid.UUID) (*Topic, error)
	Seed() error
}

type topicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) FindAll() ([]Topic, error) {
	var topics []Topic
	if err := r.db.Order("name ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) FindByID(id uuid.UUID) (*Topic, error) {
	var t Topic
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Seed inserts the initial topic list once. Topics are immutable after seed,
// so a non-empty table is left untouched.
func (r *topicRepository) Seed() error {
	var count int64
	if err := r.db.Model(&Topic{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	topics := make([]Topic, 0, len(seedTopics))
	for _, name := range seedTopics {
		topics = append(topics, Topic{ID: uuid.New(), Name: name})
	}
	return r.db.Create(&topics).Error
}
