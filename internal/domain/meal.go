package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// MealRecord is one food-log entry.
type MealRecord struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PatientID string    `gorm:"type:varchar(64);not null;index:idx_meal_patient_dt" json:"patient_id"`
	DateTime  time.Time `gorm:"not null;index:idx_meal_patient_dt" json:"datetime"`
	Carbs     float64   `gorm:"not null;default:0" json:"carbs"`
	Calories  float64   `gorm:"not null;default:0" json:"calories"`
	Sugar     float64   `gorm:"not null;default:0" json:"sugar"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
}

func (MealRecord) TableName() string {
	return "meal_records"
}

// HasTag reports whether the meal's tag set contains tag exactly.
func (m MealRecord) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MealRecordJSON is the on-disk shape of food_log_tagged.json entries.
type MealRecordJSON struct {
	ID       string    `json:"ID"`
	DateTime Timestamp `json:"datetime"`
	Carbs    Number    `json:"total_carb"`
	Calories Number    `json:"calorie"`
	Sugar    Number    `json:"sugar"`
	Tags     []string  `json:"tags"`
}

func (m MealRecordJSON) ToRecord() MealRecord {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return MealRecord{
		PatientID: m.ID,
		DateTime:  m.DateTime.Time,
		Carbs:     float64(m.Carbs),
		Calories:  float64(m.Calories),
		Sugar:     float64(m.Sugar),
		Tags:      tags,
	}
}

// AllTagsValue is the tag filter value the dashboard uses for "no filter".
const AllTagsValue = "all"

// TagFilter restricts meals to those carrying a tag. The zero value matches every meal.
type TagFilter string

// NewTagFilter normalises a user-supplied tag; "" and "all" both mean no filter.
func NewTagFilter(tag string) TagFilter {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == AllTagsValue {
		return ""
	}
	return TagFilter(tag)
}

// IsAll reports whether the filter matches every meal.
func (f TagFilter) IsAll() bool {
	return f == "" || f == AllTagsValue
}

// Matches reports whether the meal passes the filter.
func (f TagFilter) Matches(m MealRecord) bool {
	if f.IsAll() {
		return true
	}
	return m.HasTag(string(f))
}

// String returns the dashboard form of the filter ("all" when unset).
func (f TagFilter) String() string {
	if f.IsAll() {
		return AllTagsValue
	}
	return string(f)
}

func (f TagFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *TagFilter) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = NewTagFilter(s)
	return nil
}
