package models

import "time"

type Dish struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           int64   `json:"price"`
	Ingredients     string  `json:"ingredients"`
	Image           string  `json:"image"`
	Category        uint    `json:"category"`
	PreparationTime int     `json:"preparation_time"`
	Tags            []Tag   `json:"tags"`
	AverageRating   float64 `json:"average_rating"`
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Review struct {
	ID          uint      `json:"id"`
	User        User      `json:"user"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	CreatedDate time.Time `json:"created_date"`
}
