package model

import "time"

type CanvaAssets struct {
	FolderUrl         string    `json:"folderUrl"`
	FolderDescription string    `json:"folderDescription"`
	CreationDate      time.Time `json:"creationDate"`
}

type WebsitePost struct {
	PostTitle string    `json:"postTitle"`
	PostUrl   string    `json:"postUrl"`
	PostDate  time.Time `json:"postDate"`
}

type GmbSubtask struct {
	PostDate *time.Time `json:"postDate"`
	Status   GmbStatus  `json:"status,omitempty"`
}

type Task struct {
	TaskID      string      `json:"taskId"`
	TaskName    string      `json:"taskName"`
	ProjectID   string      `json:"projectId"`
	Client      string      `json:"client"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Priority    Priority    `json:"priority"`
	Status      Status      `json:"status"`
	CanvaAssets CanvaAssets `json:"canvaAssets"`
	WebsitePost WebsitePost `json:"websitePost"`
	GmbSubtask  GmbSubtask  `json:"gmbSubtask"`
}
