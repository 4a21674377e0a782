package backend

// SubjectRequest is one subject's share of a quiz generation request.
type SubjectRequest struct {
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

// QuizRequest is the body for POST /generate-quiz.
type QuizRequest struct {
	ExamType   string           `json:"exam_type"`
	Subjects   []SubjectRequest `json:"subjects"`
	Difficulty string           `json:"difficulty"`
	Topics     []string         `json:"topics"`
	TestName   string           `json:"test_name"`
}

// SearchResult is the response from POST /search. The backend guarantees no
// structure beyond these two fields; youtube_results entries and
// educational_resources are markdown-ish free text.
type SearchResult struct {
	YouTubeResults       []string `json:"youtube_results"`
	EducationalResources string   `json:"educational_resources"`
}

// questionPayload is the wire shape of a generated question.
type questionPayload struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Topic         string            `json:"topic"`
	Subject       string            `json:"subject"`
	Difficulty    string            `json:"difficulty"`
}

// quizResponse is the wire shape of POST /generate-quiz's response.
type quizResponse struct {
	Quiz []questionPayload `json:"quiz"`
}

// studyPlanResponse is the wire shape of POST /generate-study-plan's response.
type studyPlanResponse struct {
	StudyPlan string `json:"study_plan"`
	Error     string `json:"error"`
}

// chatResponse is the wire shape of POST /generate-response's response.
type chatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}
