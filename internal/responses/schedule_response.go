package responses

// ProcessResponse holds the metrics of one process. The metric fields are
// left out for processes that did not finish.
type ProcessResponse struct {
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Finished       bool   `json:"finished"`
	WaitingTime    *int   `json:"waiting_time,omitempty"`
	TurnAroundTime *int   `json:"turn_around_time,omitempty"`
	ResponseTime   *int   `json:"response_time,omitempty"`
}

type EventResponse struct {
	Time    int    `json:"time"`
	Kind    string `json:"kind"`
	Subject string `json:"subject,omitempty"`
	Detail  int    `json:"detail,omitempty"`
}

type ScheduleResponse struct {
	Policy                string            `json:"policy"`
	PolicyName            string            `json:"policy_name"`
	Quantum               int               `json:"quantum,omitempty"`
	RunFor                int               `json:"run_for"`
	FinalTime             int               `json:"final_time"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Events                []EventResponse   `json:"events"`
	Details               []ProcessResponse `json:"details"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
