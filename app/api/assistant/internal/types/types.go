// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	Message    string  `json:"message"`
	ThreadId   string  `json:"threadId,optional"`
	Role       string  `json:"role,optional"`
	FamilySize int64   `json:"familySize,optional"`
	Budget     float64 `json:"budget,optional"`
}

type CartProduct struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Reason   string  `json:"reason"`
}

type CartData struct {
	Products     []CartProduct `json:"products"`
	TotalSavings float64       `json:"totalSavings"`
	Budget       *float64      `json:"budget"`
	Rationale    string        `json:"rationale"`
}

type ChatResponse struct {
	StatusCode int       `json:"code"`
	StatusMsg  string    `json:"msg"`
	ThreadId   string    `json:"threadId,omitempty"`
	Message    string    `json:"message"`
	CartData   *CartData `json:"cartData"`
}

type ThreadSummary struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updatedAt"`
}

type ListThreadsResponse struct {
	StatusCode int             `json:"code"`
	StatusMsg  string          `json:"msg"`
	Threads    []ThreadSummary `json:"threads"`
}

type ThreadMessage struct {
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
	CartData  *CartData `json:"cartData,omitempty"`
	CreatedAt string    `json:"createdAt"`
}

type GetThreadRequest struct {
	Id string `path:"id"`
}

type GetThreadResponse struct {
	StatusCode int             `json:"code"`
	StatusMsg  string          `json:"msg"`
	Id         string          `json:"id"`
	Title      string          `json:"title"`
	Messages   []ThreadMessage `json:"messages"`
}

type DeleteThreadRequest struct {
	Id string `path:"id"`
}

type DeleteThreadResponse struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}
