package finance

import (
	"math"
	"math/rand"
	"testing"

	"invoice_service/internal/domain/entities"
)

const tolerance = 1e-9

func TestComputeSubtotal(t *testing.T) {
	t.Run("sums prices", func(t *testing.T) {
		items := []entities.InvoiceItem{{Service: "A", Price: 100}, {Service: "B", Price: 50}}
		if got := ComputeSubtotal(items); got != 150 {
			t.Fatalf("expected 150, got %v", got)
		}
	})

	t.Run("empty is zero", func(t *testing.T) {
		if got := ComputeSubtotal(nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("non-numeric prices count as zero", func(t *testing.T) {
		items := []entities.InvoiceItem{{Price: math.NaN()}, {Price: math.Inf(1)}, {Price: 7}}
		if got := ComputeSubtotal(items); got != 7 {
			t.Fatalf("expected 7, got %v", got)
		}
	})

	t.Run("order independent", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for n := 0; n < 50; n++ {
			items := make([]entities.InvoiceItem, 1+r.Intn(20))
			want := 0.0
			for i := range items {
				items[i].Price = math.Round(r.Float64()*100000) / 100
				want += items[i].Price
			}
			shuffled := append([]entities.InvoiceItem(nil), items...)
			r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			a, b := ComputeSubtotal(items), ComputeSubtotal(shuffled)
			if math.Abs(a-want) > 1e-6 || math.Abs(a-b) > 1e-6 {
				t.Fatalf("subtotal mismatch: sum=%v ordered=%v shuffled=%v", want, a, b)
			}
		}
	})
}

func TestComputeDiscountAmount(t *testing.T) {
	t.Run("disabled is always zero", func(t *testing.T) {
		for _, rate := range []float64{-10, 0, 5, 100, 250} {
			if got := ComputeDiscountAmount(150, rate, false); got != 0 {
				t.Fatalf("rate %v: expected 0, got %v", rate, got)
			}
		}
	})

	t.Run("non-positive rate is zero", func(t *testing.T) {
		if got := ComputeDiscountAmount(150, 0, true); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
		if got := ComputeDiscountAmount(150, -5, true); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("rate above 100 is not clamped", func(t *testing.T) {
		if got := ComputeDiscountAmount(100, 150, true); got != 150 {
			t.Fatalf("expected 150, got %v", got)
		}
		if got := ComputeTotal(100, 150); got != -50 {
			t.Fatalf("expected -50, got %v", got)
		}
	})

	t.Run("total matches subtotal times complement", func(t *testing.T) {
		for rate := 0.0; rate <= 100; rate += 2.5 {
			subtotal := 1234.56
			total := ComputeTotal(subtotal, ComputeDiscountAmount(subtotal, rate, true))
			want := subtotal * (1 - rate/100)
			if math.Abs(total-want) > 1e-6 {
				t.Fatalf("rate %v: expected %v, got %v", rate, want, total)
			}
		}
	})
}

func TestCompute(t *testing.T) {
	items := []entities.InvoiceItem{{Service: "A", Price: 100}, {Service: "B", Price: 50}}

	got := Compute(items, 10, true)
	if got.Subtotal != 150 || math.Abs(got.DiscountAmount-15) > tolerance || math.Abs(got.Total-135) > tolerance || got.DiscountRate != 10 {
		t.Fatalf("unexpected totals: %+v", got)
	}

	disabled := Compute(items, 10, false)
	if disabled.DiscountRate != 0 || disabled.DiscountAmount != 0 || disabled.Total != 150 {
		t.Fatalf("unexpected totals with discount disabled: %+v", disabled)
	}
}

func TestConsistent(t *testing.T) {
	inv := entities.Invoice{
		Items:          []entities.InvoiceItem{{Price: 100}, {Price: 50}},
		DiscountRate:   10,
		Subtotal:       150,
		DiscountAmount: 15,
		Total:          135,
	}
	if !Consistent(inv, 0.001) {
		t.Fatalf("expected consistent invoice")
	}
	inv.Total = 1
	if Consistent(inv, 0.001) {
		t.Fatalf("expected inconsistent invoice")
	}
}
