package dto

type JobOutput struct {
	ID            string `json:"id"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	Column        string `json:"column"`
	ATSScore      *int   `json:"atsScore"`
	NextAction    string `json:"nextAction"`
	Salary        string `json:"salary"`
	CompanyDomain string `json:"companyDomain"`
	UpdatedAt     string `json:"updatedAt"`
}

type BoardOutput struct {
	Columns map[string][]JobOutput `json:"columns"`
	Total   int                    `json:"total"`
	Source  string                 `json:"source"`
}

type SyncOutput struct {
	Jobs int
}
