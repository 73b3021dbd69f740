package search

import "context"

type Result struct {
	Title string
	Link  string
}

type Client interface {
	// Search возвращает результаты веб-поиска. Пустой срез — не ошибка.
	Search(ctx context.Context, query string) ([]Result, error)
}
