package models

// Data Transfer Objects

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
}

type AddCollaboratorRequest struct {
	Name string `json:"name"`
}

type SubmitTaskRequest struct {
	Student    string `json:"student"`
	Submission string `json:"submission"`
}

type ProvideFeedbackRequest struct {
	TaskID   int    `json:"task_id"`
	Tutor    string `json:"tutor"`
	Comments string `json:"comments"`
}

// ScheduleSessionRequest.Date accepts YYYY-MM-DD or RFC 3339.
type ScheduleSessionRequest struct {
	Tutor   string `json:"tutor"`
	Student string `json:"student"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type CreateStudyGroupRequest struct {
	GroupName string `json:"group_name"`
	Creator   string `json:"creator"`
}

type JoinStudyGroupRequest struct {
	Student string `json:"student"`
}

type TaskUpdateNotificationRequest struct {
	TaskID  int    `json:"task_id"`
	Message string `json:"message"`
}

type NotificationsResponse struct {
	Recipient     string   `json:"recipient"`
	Notifications []string `json:"notifications"`
}
