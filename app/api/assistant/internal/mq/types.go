package mq

const TaskCatalogReload = "catalog:reload"

// ProductEvent is published by the catalog service whenever a product is
// created, updated or deleted. The payload only names the product; the
// assistant reloads the whole snapshot rather than patching it.
type ProductEvent struct {
	ProductId int64  `json:"product_id"`
	Action    string `json:"action"` // create | update | delete
}

// AssistantServedEvent is emitted after every answered chat for analytics.
type AssistantServedEvent struct {
	UserId     int64    `json:"user_id"`
	ThreadId   int64    `json:"thread_id"`
	Intent     string   `json:"intent"`
	ProductIds []string `json:"product_ids,omitempty"`
}
