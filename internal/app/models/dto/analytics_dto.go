package dto

// RevenueBucket is one point of the revenue time series. Period is a bucket
// label such as "2026-03" for monthly grouping.
type RevenueBucket struct {
	Period            string  `json:"period"`
	Revenue           float64 `json:"revenue"`
	SubscriptionCount int64   `json:"subscription_count"`
}

// SubscriptionTypeStat is the per-plan breakdown of revenue in the report
// window. Plans with no subscriptions in the window still appear with zero
// counts.
type SubscriptionTypeStat struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	SubscriptionCount int64   `json:"subscription_count"`
	Revenue           float64 `json:"revenue"`
}

// RevenueStats aggregates the report window as a whole.
type RevenueStats struct {
	TotalRevenue        float64                `json:"total_revenue"`
	TotalSubscriptions  int64                  `json:"total_subscriptions"`
	ActiveSubscriptions int64                  `json:"active_subscriptions"`
	SubscriptionTypes   []SubscriptionTypeStat `json:"subscription_types"`
}

// RevenueStatsResponse is the full revenue report.
type RevenueStatsResponse struct {
	Period      string          `json:"period"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	RevenueData []RevenueBucket `json:"revenue_data"`
	Stats       RevenueStats    `json:"stats"`
}

// DashboardStats is the admin overview of entity totals.
type DashboardStats struct {
	Users       int64 `json:"users"`
	Instructors int64 `json:"instructors"`
	Courses     int64 `json:"courses"`
	Blogs       int64 `json:"blogs"`
}
