package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"restaurant-client/models"
)

// DishFilter narrows a catalog listing; zero values are omitted from the query
type DishFilter struct {
	Query      string
	CategoryID uint
	ChefID     uint
	MinPrice   int64
	MaxPrice   int64
	MinPrepare int
	MaxPrepare int
	Ordering   string
	Page       int
}

func (f DishFilter) values() url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.CategoryID > 0 {
		q.Set("category_id", strconv.FormatUint(uint64(f.CategoryID), 10))
	}
	if f.ChefID > 0 {
		q.Set("chef_id", strconv.FormatUint(uint64(f.ChefID), 10))
	}
	if f.MinPrice > 0 {
		q.Set("min_price", strconv.FormatInt(f.MinPrice, 10))
	}
	if f.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatInt(f.MaxPrice, 10))
	}
	if f.MinPrepare > 0 {
		q.Set("min_prepare", strconv.Itoa(f.MinPrepare))
	}
	if f.MaxPrepare > 0 {
		q.Set("max_prepare", strconv.Itoa(f.MaxPrepare))
	}
	if f.Ordering != "" {
		q.Set("ordering", f.Ordering)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	return q
}

// DishPage is one page of the dish catalog
type DishPage struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []models.Dish `json:"results"`
}

func (c *Client) ListDishes(ctx context.Context, filter DishFilter) (*DishPage, error) {
	var page DishPage
	if err := c.do(ctx, http.MethodGet, "/dishes/", "", filter.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetDish(ctx context.Context, id uint) (*models.Dish, error) {
	var d models.Dish
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/dishes/%d/", id), "", nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/categories/", "", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Category](data)
}

// CompareDishes returns side-by-side records for the given dish ids
func (c *Client) CompareDishes(ctx context.Context, ids []uint) ([]models.Dish, error) {
	body := map[string][]uint{"dish_ids": ids}
	data, err := c.doRaw(ctx, http.MethodPost, "/dishes/compare/", "", nil, body)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Dish](data)
}

// LikeDish toggles the caller's like on a dish and reports the new state
func (c *Client) LikeDish(ctx context.Context, token string, id uint) (string, error) {
	var out struct {
		Detail string `json:"detail"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/dishes/%d/like/", id), token, nil, nil, &out); err != nil {
		return "", err
	}
	return out.Detail, nil
}

func (c *Client) ListReviews(ctx context.Context, dishID uint) ([]models.Review, error) {
	data, err := c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/dishes/%d/reviews/", dishID), "", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Review](data)
}

type ReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func (c *Client) CreateReview(ctx context.Context, token string, dishID uint, req ReviewRequest) (*models.Review, error) {
	var r models.Review
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews/", dishID), token, nil, req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) DeleteReview(ctx context.Context, token string, reviewID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d/", reviewID), token, nil, nil, nil)
}
