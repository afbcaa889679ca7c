package interfaces

import "paint_quote/internal/domain/entities"

// IPresenter renders what the quotation lifecycle produces. It only formats data
// handed to it and never computes prices or changes lifecycle state.
type IPresenter interface {
	RenderCurrent(q *entities.Quotation)
	RenderHistory(quotations []entities.Quotation)
	Notify(message string, isError bool)
}
