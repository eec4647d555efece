package wport

import (
	"math"
	"testing"
)

func TestSetRpCachesAdmittance(t *testing.T) {
	var p Port
	p.SetRp(2000)
	if math.Abs(p.Gp-1.0/2000) > 1e-15 {
		t.Errorf("Gp: got %f, want %f", p.Gp, 1.0/2000)
	}
}

func TestVoltageCurrent(t *testing.T) {
	var p Port
	p.SetRp(1000)
	p.A = 3
	p.B = 1
	if got, want := p.Voltage(), 2.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Voltage: got %f, want %f", got, want)
	}
	if got, want := p.Current(), (3.0-1.0)/(2*1000); math.Abs(got-want) > 1e-12 {
		t.Errorf("Current: got %f, want %f", got, want)
	}
}

func TestCurrentZeroRp(t *testing.T) {
	var p Port
	p.A, p.B = 5, 1
	if got := p.Current(); got != 0 {
		t.Errorf("Current with Rp=0: got %f, want 0", got)
	}
}
