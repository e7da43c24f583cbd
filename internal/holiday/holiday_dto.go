package holiday

type CreateHolidayRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	IsRecurring bool   `json:"is_recurring"`
	Description string `json:"description"`
}

type UpdateHolidayRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	IsRecurring bool   `json:"is_recurring"`
	Description string `json:"description"`
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"is_recurring"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}
