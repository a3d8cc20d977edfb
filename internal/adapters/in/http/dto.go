package http

// Request bodies are checked with validator tags before any command is built;
// the commands and aggregates validate again with their own rules.

type CreateCourseRequest struct {
	Title    string `json:"title"    validate:"required,max=200"`
	Overview string `json:"overview" validate:"max=10000"`
}

type AddModuleRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=10000"`
	// Position is optional; when omitted the module goes after the last one.
	Position *int `json:"position" validate:"omitempty,min=0"`
}

type UpdateModuleRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=10000"`
}

type AddContentRequest struct {
	Kind     string `json:"kind"     validate:"required,oneof=text video image file"`
	Title    string `json:"title"    validate:"required,max=200"`
	Body     string `json:"body"     validate:"required"`
	Position *int   `json:"position" validate:"omitempty,min=0"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ModuleResponse struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type ContentResponse struct {
	ID       string `json:"id"`
	ModuleID string `json:"module_id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Position int    `json:"position"`
}

type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
