package response

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Envelope 统一响应包裹。每次调用都新建，绝不复用共享实例，
// 避免并发请求之间串数据。
type Envelope struct {
	Data   any    `json:"data"`
	Msg    string `json:"msg"`
	Status string `json:"status"`
}

// OK 成功响应（data 为 nil 时兜底成空数组，保持原有 wire 形状）。
func OK(data any, msg string) Envelope {
	if data == nil {
		data = []any{}
	}
	return Envelope{Data: data, Msg: msg, Status: StatusOK}
}

// Fail 失败响应。
func Fail(msg string) Envelope {
	return Envelope{Data: []any{}, Msg: msg, Status: StatusError}
}
