package request

type CalendarQuery struct {
	From string `form:"from"`
	Days int    `form:"days" binding:"omitempty,min=1,max=31"`
}
