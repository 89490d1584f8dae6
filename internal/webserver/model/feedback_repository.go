package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/feedbox/feedbox/internal/result"
	"gorm.io/gorm"
)

// feedbackSortableColumns lists the columns List accepts as sort fields.
// Anything else falls back to the default ordering instead of failing.
var feedbackSortableColumns = map[string]struct{}{
	"created_at": {},
	"updated_at": {},
	"rating":     {},
	"first_name": {},
	"last_name":  {},
	"email":      {},
}

type FeedbackRepository struct {
	DB *gorm.DB
}

func (f *FeedbackRepository) List(page int, resultsPerPage int, sortBy, sortDirection string) (result.Paginated[[]Feedback], error) {
	var entries []Feedback

	if _, ok := feedbackSortableColumns[sortBy]; !ok {
		sortBy = "created_at"
	}
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "desc"
	}

	res := f.DB.Scopes(Paginate(page, resultsPerPage)).
		Order(fmt.Sprintf("%s %s", sortBy, sortDirection)).
		Find(&entries)
	if res.Error != nil {
		log.Printf("error listing feedback entries: %s\n", res.Error)
		return result.Paginated[[]Feedback]{}, res.Error
	}

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(f.Total()),
		entries,
	), nil
}

func (f *FeedbackRepository) Total() int64 {
	var totalRows int64

	f.DB.Model(&Feedback{}).Count(&totalRows)
	return totalRows
}

func (f *FeedbackRepository) FindByEmail(email string) (*Feedback, error) {
	return f.find("email", email)
}

func (f *FeedbackRepository) FindByUuid(uuid string) (*Feedback, error) {
	return f.find("uuid", uuid)
}

func (f *FeedbackRepository) Create(feedback *Feedback) error {
	if result := f.DB.Create(feedback); result.Error != nil {
		log.Printf("error creating feedback entry: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (f *FeedbackRepository) Update(feedback *Feedback) error {
	if result := f.DB.Save(feedback); result.Error != nil {
		log.Printf("error updating feedback entry: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (f *FeedbackRepository) find(field, value string) (*Feedback, error) {
	var feedback Feedback

	result := f.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&feedback)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &feedback, result.Error
}
