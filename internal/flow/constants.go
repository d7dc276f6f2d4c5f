/*
 * Copyright (c) 2025, Veritag Labs. (https://veritag.io).
 *
 * Veritag Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package flow implements the certification flow engine: the session state
// machine that drives a customer from QR scan to the final verification result.
package flow

// FlowStep identifies one stage of the certification journey.
type FlowStep string

const (
	// StepScan is the QR scan entry stage.
	StepScan FlowStep = "scan"
	// StepWelcome is the campaign welcome stage.
	StepWelcome FlowStep = "welcome"
	// StepStoreSelector is the purchase channel and store selection stage.
	StepStoreSelector FlowStep = "store_selector"
	// StepUserLogin is the login stage.
	StepUserLogin FlowStep = "user_login"
	// StepAuthentication is the product authentication check stage.
	StepAuthentication FlowStep = "authentication"
	// StepFinalPage is the final result stage.
	StepFinalPage FlowStep = "final_page"
	// StepInvalid is the terminal failure stage, reachable from any point.
	StepInvalid FlowStep = "invalid"
)

// StepOrder is the forward navigation order of the flow. Next/prev navigation
// is index based over this array and clamps at both ends; StepInvalid sits
// outside the order.
var StepOrder = []FlowStep{
	StepScan,
	StepWelcome,
	StepStoreSelector,
	StepUserLogin,
	StepAuthentication,
	StepFinalPage,
}

// stepIndex returns the position of a step in the forward order, or -1 for
// steps outside it.
func stepIndex(step FlowStep) int {
	for i, candidate := range StepOrder {
		if candidate == step {
			return i
		}
	}
	return -1
}

// SessionStatus identifies the lifecycle status of a flow session.
type SessionStatus string

const (
	// SessionStatusActive indicates a session still in progress.
	SessionStatusActive SessionStatus = "active"
	// SessionStatusCompleted indicates a session that reached the final page.
	SessionStatusCompleted SessionStatus = "completed"
	// SessionStatusFailed indicates a session that ended in the invalid step.
	SessionStatusFailed SessionStatus = "failed"
)

// LoginProvider identifies how a user authenticated during the flow.
type LoginProvider string

const (
	// LoginProviderGoogle is Google social login.
	LoginProviderGoogle LoginProvider = "google"
	// LoginProviderApple is Apple social login.
	LoginProviderApple LoginProvider = "apple"
	// LoginProviderEmail is email/password login.
	LoginProviderEmail LoginProvider = "email"
)

// Telemetry event names emitted by the engine. The telemetry service prefixes
// them with the flow namespace on delivery.
const (
	// EventFlowStarted is recorded when a session starts.
	EventFlowStarted = "started"
	// EventStoreSelected is recorded when the customer picks a store.
	EventStoreSelected = "store_selected"
	// EventUserLinked is recorded when a user identity is linked to a session.
	EventUserLinked = "user_linked"
	// EventVerifyPrefix prefixes the verification outcome events (verify_pass etc.).
	EventVerifyPrefix = "verify_"
)

// ObjectTypeFlowSession is the telemetry object type for session events.
const ObjectTypeFlowSession = "flow_session"

// AnonymousActor is the telemetry actor used before a user identity is linked.
const AnonymousActor = "anonymous"
