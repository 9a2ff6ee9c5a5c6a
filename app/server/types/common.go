package types

type ErrorMessage struct {
	Message string `json:"message"`
}

type Message struct {
	Message string `json:"message"`
}

// MoveResult 排序移动的结果：已经在最顶 / 最底时 moved 为 false ，不算错误
type MoveResult struct {
	Moved bool `json:"moved"`
}
