package wizard

import "strings"

// Validate returns the missing required fields of one step. The result is
// empty when the step is complete; it never looks at other steps.
func Validate(step Step, d *Draft) ErrorSet {
	errs := ErrorSet{}
	for i := range fields {
		f := &fields[i]
		if f.step != step || !f.required {
			continue
		}
		if strings.TrimSpace(f.get(d)) == "" {
			errs[f.key] = f.label + " is required"
		}
	}
	return errs
}

// ValidateThrough validates steps 1..last and returns the union of their
// errors along with the steps that failed.
func ValidateThrough(last Step, d *Draft) (ErrorSet, []Step) {
	all := ErrorSet{}
	var failed []Step
	for step := StepIdentity; step <= last; step++ {
		errs := Validate(step, d)
		if len(errs) == 0 {
			continue
		}
		failed = append(failed, step)
		for k, v := range errs {
			all[k] = v
		}
	}
	return all, failed
}
