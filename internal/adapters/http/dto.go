package http

// wordsQuery is the bound and validated query surface of GET /v1/words.
type wordsQuery struct {
	Number   string `query:"n" validate:"required,max=121"`
	Scale    string `query:"scale" validate:"omitempty,oneof=short long"`
	Mode     string `query:"mode" validate:"omitempty,oneof=cardinal ordinal"`
	And      string `query:"and" validate:"omitempty,oneof=true false"`
	Linker   string `query:"linker" validate:"omitempty,max=3"`
	Negation string `query:"negation" validate:"omitempty,oneof=negative minus"`
}

// WordsResponse is the JSON shape returned by GET /v1/words.
type WordsResponse struct {
	Number string   `json:"number"`
	Words  string   `json:"words"`
	Scale  string   `json:"scale"`
	Mode   string   `json:"mode"`
	Meta   MetaResp `json:"meta"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	Cached    bool   `json:"cached"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
