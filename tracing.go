package contagiongo

// traceContacts runs the two-channel contact-tracing scan triggered by a
// CT event (spec.md §4.7): for every peer still within the rolling
// contact window, the manual-recall channel is tried first, then the
// app channel, and the first channel to succeed schedules that peer's
// BOQ_t — the app channel is only tried when the manual channel queued
// nothing, so one scan queues at most one BOQ_t per peer, and
// EventQueue.PushBOQt drops a BOQ_t already pending for the same peer
// and time. The return value counts peers newly queued. Both channels require a
// contact count strictly greater than their threshold (spec.md §4.7:
// "strict >, not >=").
func traceContacts(a *Agent, agents map[int]*Agent, currentTime int, interv InterventionParams, rng RNG, q *EventQueue) int {
	traced := 0
	for _, peerID := range a.peers() {
		peer, ok := agents[peerID]
		if !ok {
			continue
		}
		count := a.peerContactCount(peerID, currentTime, interv.Tracelength)
		if count == 0 {
			continue
		}

		queued := false
		if count > interv.ManualTracingThreshold && rng.Bernoulli(interv.PTraced) {
			t := clampToNow(quantize(float64(currentTime+interv.TraceDelayManual)), currentTime)
			if q.PushBOQt(t, peerID) {
				queued = true
			}
		}
		if !queued && a.HasApp && peer.HasApp && count > interv.AppTracingThreshold {
			t := clampToNow(quantize(float64(currentTime+interv.TraceDelayApp)), currentTime)
			if q.PushBOQt(t, peerID) {
				queued = true
			}
		}
		if queued {
			traced++
		}
	}
	return traced
}
