package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Date        time.Time `gorm:"index"`
	IsRecurring bool      `gorm:"default:false"` // observed every year on the same month and day
	Description string
	IsActive    bool `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Occurrence is a holiday resolved to a concrete calendar date. Recurring
// holidays produce one occurrence per year they fall in.
type Occurrence struct {
	Name string
	Date time.Time
}
