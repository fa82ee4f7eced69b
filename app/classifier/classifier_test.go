package classifier

import "testing"

func TestPredictNegative(t *testing.T) {
	c := New()

	label, conf, err := c.Predict("The crisis deepened as the market crash caused massive layoffs and fear.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != LabelNegative {
		t.Errorf("expected negative, got %q", label)
	}
	if conf < 0.5 || conf > 1.0 {
		t.Errorf("confidence out of range: %f", conf)
	}
}

func TestPredictPositive(t *testing.T) {
	c := New()

	label, conf, err := c.Predict("Record growth and a major breakthrough boost hope for a strong recovery.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != LabelPositive {
		t.Errorf("expected positive, got %q", label)
	}
	if conf <= 0.5 {
		t.Errorf("expected high confidence for one-sided text, got %f", conf)
	}
}

func TestPredictNeutralText(t *testing.T) {
	c := New()

	label, conf, err := c.Predict("The committee met on Tuesday to discuss scheduling.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != LabelPositive {
		t.Errorf("expected positive fallback for neutral text, got %q", label)
	}
	if conf != 0.5 {
		t.Errorf("expected minimum confidence, got %f", conf)
	}
}

func TestPredictMixedLeansTowardMajority(t *testing.T) {
	c := New()

	label, _, err := c.Predict("Despite the strong growth, the scandal and fraud caused a collapse.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != LabelNegative {
		t.Errorf("expected majority negative, got %q", label)
	}
}
