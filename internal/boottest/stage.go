// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest

// Stage is the state a run is in. Besides the fixed stages, each step of a
// [Scenario] is a stage named after the step.
type Stage string

const (
	StageInit      Stage = "Init"
	StageLaunching Stage = "Launching"
	StagePass      Stage = "Pass"
	StageFail      Stage = "Fail"
)

// String implements [fmt.Stringer].
func (s Stage) String() string {
	return string(s)
}
