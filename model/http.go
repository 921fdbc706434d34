package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type DocumentResponse struct {
	ID string `json:"id"`
}

type TonesResponse struct {
	Base  string   `json:"base,omitempty"`
	Names []string `json:"names"`
}

// NewTonesResponse lists the names of the tone slots that are set.
func NewTonesResponse(ti ToneInfo) TonesResponse {
	res := TonesResponse{Names: []string{}}
	if ti.BaseToneName != nil {
		res.Base = *ti.BaseToneName
	}
	for _, name := range ti.Names {
		if name != nil {
			res.Names = append(res.Names, *name)
		}
	}
	return res
}
