package app

// Demo payload served to every authenticated user. Only the user block
// varies per request.

type DashboardData struct {
	User               DashboardUser      `json:"user"`
	Earnings           Earnings           `json:"earnings"`
	Rank               Rank               `json:"rank"`
	Projects           ProjectSummary     `json:"projects"`
	RecentInvoices     []Invoice          `json:"recentInvoices"`
	YourProjects       []Project          `json:"yourProjects"`
	RecommendedProject RecommendedProject `json:"recommendedProject"`
}

type DashboardUser struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Earnings struct {
	Amount int    `json:"amount"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

type Rank struct {
	Position    int    `json:"position"`
	Description string `json:"description"`
}

type ProjectSummary struct {
	Total     int    `json:"total"`
	Pending   string `json:"pending"`
	Completed string `json:"completed"`
}

type Invoice struct {
	ID      int     `json:"id"`
	Client  string  `json:"client"`
	Company string  `json:"company"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
	Avatar  string  `json:"avatar"`
}

type Project struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	DaysRemaining int    `json:"daysRemaining"`
	Avatar        string `json:"avatar"`
}

type RecommendedProject struct {
	Client      string `json:"client"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Budget      int    `json:"budget"`
	Status      string `json:"status"`
	Avatar      string `json:"avatar"`
}

func demoDashboard() *DashboardData {
	return &DashboardData{
		Earnings: Earnings{
			Amount: 8350,
			Change: "+10% since last month",
			Trend:  "up",
		},
		Rank: Rank{
			Position:    98,
			Description: "in top 100",
		},
		Projects: ProjectSummary{
			Total:     32,
			Pending:   "mobile app",
			Completed: "branding",
		},
		RecentInvoices: []Invoice{
			{
				ID:      1,
				Client:  "Alexander Williams",
				Company: "AX creations",
				Amount:  1200.87,
				Status:  "Paid",
				Avatar:  avatarURL("Alexander Williams", "10b981"),
			},
			{
				ID:      2,
				Client:  "John Phillips",
				Company: "design studio",
				Amount:  12989.88,
				Status:  "Late",
				Avatar:  avatarURL("John Phillips", "ef4444"),
			},
		},
		YourProjects: []Project{
			{
				ID:            1,
				Title:         "Logo design for Bakery",
				DaysRemaining: 3,
				Avatar:        avatarURL("Bakery", "f59e0b"),
			},
			{
				ID:            2,
				Title:         "Personal branding project",
				DaysRemaining: 5,
				Avatar:        avatarURL("Branding", "8b5cf6"),
			},
		},
		RecommendedProject: RecommendedProject{
			Client:      "Thomas Martin",
			Company:     "Upside Designs",
			Title:       "Need a designer to form branding essentials for my business.",
			Description: "Looking for a talented brand designer to create all the branding materials for my new bakery.",
			Budget:      8700,
			Status:      "Design",
			Avatar:      avatarURL("Thomas Martin", "6366f1"),
		},
	}
}
