package genai

// Wire types for the generateContent REST endpoint. The response schema is
// deliberately explicit: a 2xx body that does not carry
// candidates[0].content.parts[0].text is a deterministic transient failure,
// never a silent empty result.

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// apiError is the error envelope the endpoint returns on non-2xx statuses.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// text pulls the generated text out of the fixed response path, or "" when
// any link in the path is missing.
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
