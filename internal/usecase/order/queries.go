package usecase

import (
	"github.com/swapline/usdt-uah-bot/internal/domain"
	orderdto "github.com/swapline/usdt-uah-bot/internal/usecase/dto/order"
)

const defaultPerPage = 5

func (uc *DefaultOrderUsecase) GetOrderByID(orderID int64) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) ListOrders(input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error) {
	page, perPage := normalizePage(input)
	orders, total, err := uc.OrderRepo.ListOrdersPage(page, perPage)
	if err != nil {
		return nil, err
	}
	return pageOutput(orders, total, page, perPage), nil
}

func (uc *DefaultOrderUsecase) ListUserOrders(userID int64, input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error) {
	page, perPage := normalizePage(input)
	orders, total, err := uc.OrderRepo.ListUserOrdersPage(userID, page, perPage)
	if err != nil {
		return nil, err
	}
	return pageOutput(orders, total, page, perPage), nil
}

func normalizePage(input *orderdto.ListOrdersInput) (page, perPage int) {
	page, perPage = 1, defaultPerPage
	if input != nil {
		if input.Page > 0 {
			page = input.Page
		}
		if input.PerPage > 0 {
			perPage = input.PerPage
		}
	}
	return page, perPage
}

func pageOutput(orders []*domain.Order, total int64, page, perPage int) *orderdto.ListOrdersOutput {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages == 0 {
		pages = 1
	}
	return &orderdto.ListOrdersOutput{
		Orders: orders,
		Total:  total,
		Page:   page,
		Pages:  pages,
	}
}
