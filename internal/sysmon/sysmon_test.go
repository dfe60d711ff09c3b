package sysmon

import "testing"

func TestSample_ReturnsBoundedPercents(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent = %v, want [0,100]", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent = %v, want [0,100]", s.MemPercent)
	}
}

func TestSampler_BoundedHistory(t *testing.T) {
	sampler := NewSampler(3)
	for i := 0; i < 5; i++ {
		sampler.Sample()
	}
	if n := len(sampler.History()); n != 3 {
		t.Errorf("history length = %d, want 3", n)
	}
}

func TestSampler_DefaultLimit(t *testing.T) {
	sampler := NewSampler(0)
	if sampler.limit != 60 {
		t.Errorf("default limit = %d, want 60", sampler.limit)
	}
}

func TestSampler_HistoryIsCopy(t *testing.T) {
	sampler := NewSampler(5)
	sampler.Sample()

	history := sampler.History()
	history[0].CPUPercent = -1

	if sampler.History()[0].CPUPercent == -1 {
		t.Error("mutating the returned history affected the sampler")
	}
}
