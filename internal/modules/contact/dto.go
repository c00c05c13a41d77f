package contact

type CreateMessageRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	PropertyInterest string `json:"propertyInterest"`
	Message          string `json:"message" binding:"required"`
}
