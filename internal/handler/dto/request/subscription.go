package request

type RequestSubscriptionRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type RejectSubscriptionRequest struct {
	Reason string `json:"reason" binding:"required"`
}
