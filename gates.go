package quoteit

// StepStatus holds the completion predicate for each wizard step. All
// predicates are total: malformed data reads as "not complete", never as an
// error.
type StepStatus struct {
	RequestOK bool `json:"requestOk"`
	VendorsOK bool `json:"vendorsOk"`
	RFQOK     bool `json:"rfqOk"`
	QuotesOK  bool `json:"quotesOk"`
	PackOK    bool `json:"packOk"`
}

// done returns the predicate for one step.
func (st StepStatus) done(step int) bool {
	switch step {
	case StepRequest:
		return st.RequestOK
	case StepVendors:
		return st.VendorsOK
	case StepRFQs:
		return st.RFQOK
	case StepQuotes:
		return st.QuotesOK
	case StepPack:
		return st.PackOK
	default:
		return false
	}
}

// EvaluateSteps computes all five completion predicates for a session.
func EvaluateSteps(s Session) StepStatus {
	return DefaultThresholds().EvaluateSteps(s)
}

// EvaluateSteps computes the completion predicates under a specific
// threshold policy.
func (t Thresholds) EvaluateSteps(s Session) StepStatus {
	need := t.RequiredQuoteCountFor(s.Request)

	costN, costOK := ToNumber(s.Request.EstimatedCost)
	requestOK := Normalize(s.Request.Title) != "" &&
		Normalize(s.Request.Spec) != "" &&
		costOK && costN >= 0

	contactable := 0
	reachedOut := 0
	for _, v := range s.Vendors {
		if v.Inactive {
			continue
		}
		if Normalize(v.Name) != "" && IsEmail(v.Email) && Normalize(v.Phone) != "" {
			contactable++
		}
		if v.ContactMethod != "" && v.ContactMethod != ContactNone {
			reachedOut++
		}
	}
	vendorsOK := contactable >= need
	rfqOK := vendorsOK && reachedOut >= need

	priced := 0
	for _, q := range s.Quotes {
		if _, ok := ToNumber(q.Amount); ok {
			priced++
		}
	}
	quotesOK := priced >= need

	// The selection must point at a vendor that actually returned a priced
	// quote; a dangling or unpriced selection does not complete the pack.
	packOK := quotesOK && selectionPriced(s)

	return StepStatus{
		RequestOK: requestOK,
		VendorsOK: vendorsOK,
		RFQOK:     rfqOK,
		QuotesOK:  quotesOK,
		PackOK:    packOK,
	}
}

func selectionPriced(s Session) bool {
	id := s.Compliance.SelectedVendorID
	if id == "" {
		return false
	}
	if _, ok := s.VendorByID(id); !ok {
		return false
	}
	q, ok := s.QuoteFor(id)
	if !ok {
		return false
	}
	_, ok = ToNumber(q.Amount)
	return ok
}

// ClampStep restricts a step index to the valid range.
func ClampStep(n int) int {
	if n < 0 {
		return 0
	}
	if n > StepCount-1 {
		return StepCount - 1
	}
	return n
}

// CanAdvance reports whether moving from the session's current step to the
// next one is permitted: the current step's predicate must hold. The final
// step has no successor.
func CanAdvance(s Session) bool {
	step := ClampStep(s.UI.Step)
	if step >= StepPack {
		return false
	}
	return EvaluateSteps(s).done(step)
}

// CanNavigate reports whether jumping to an arbitrary step is permitted.
// Backward movement is always allowed; a forward jump needs every strictly
// earlier step complete. This models the disabling of later step selectors,
// not a strict pipeline.
func CanNavigate(s Session, target int) bool {
	target = ClampStep(target)
	if target <= ClampStep(s.UI.Step) {
		return true
	}
	st := EvaluateSteps(s)
	for i := 0; i < target; i++ {
		if !st.done(i) {
			return false
		}
	}
	return true
}
