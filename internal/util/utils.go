package util

import "cpusched/internal/responses"

// CalculateAverage averages the metrics of the processes that finished.
// Processes that did not finish are left out; with none finished all
// averages are zero.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64
	var finishedCount int

	for _, proccess := range proccessDetails {
		if !proccess.Finished {
			continue
		}

		waitingTimeSum += float64(*proccess.WaitingTime)
		responseTimeSum += float64(*proccess.ResponseTime)
		turnAroundTimeSum += float64(*proccess.TurnAroundTime)
		finishedCount++
	}

	if finishedCount == 0 {
		return
	}

	proccessCount := float64(finishedCount)

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return
}
