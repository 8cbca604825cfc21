// Package events defines the typed session event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - caller_reply.*
//   - turn_state.*
//   - analytics.*
//   - risk_alert.*
//   - emergency.*
//   - coaching.*
//   - suggestions.*
//   - session.*
//
// Semantics used across the package:
//
//   - Segment: append-only text piece emitted in stream order.
//   - Final: terminal immutable text/state for the current turn phase.
//   - Raised/Dismissed: visibility boundaries of a transient surface; a
//     raised surface replaces any previously raised one of the same kind.
//   - Applied: a wholesale replacement of session-scoped derived state.
//
// caller_reply events
//
//   - CallerReplySegment (caller_reply.segment): streamed caller reply text
//     segment, appended to the single reply container of the active turn.
//   - CallerReplyFinal (caller_reply.final): caller reply stream is complete;
//     carries the full reply text.
//
// turn_state events
//
//   - TurnStarted (turn_state.started): a volunteer message was accepted and
//     the turn is in flight.
//   - TurnCompleted (turn_state.completed): analytics for the turn were
//     applied and the turn is fully settled.
//   - TurnFailed (turn_state.failed): the turn aborted on a transport or
//     response error; input has been re-enabled.
//
// analytics events
//
//   - LiveContextApplied (analytics.live_context_applied): a full live-context
//     replacement was merged; carries the new snapshot.
//
// risk_alert events
//
//   - RiskAlertRaised (risk_alert.raised): a risk escalation became visible.
//   - RiskAlertDismissed (risk_alert.dismissed): the visible alert faded out
//     or was superseded.
//
// emergency events
//
//   - EmergencyRaised (emergency.raised): the blocking emergency protocol
//     overlay became visible.
//   - EmergencyAcknowledged (emergency.acknowledged): the operator dismissed
//     the overlay.
//
// coaching events
//
//   - CoachingRaised (coaching.raised): a coaching tip became visible.
//   - CoachingFaded (coaching.faded): the visible tip faded out or was
//     superseded.
//
// suggestions events
//
//   - SuggestionsUpdated (suggestions.updated): the reply suggestion chips
//     were replaced; an empty list clears them.
//
// session events
//
//   - SessionStarted (session.started): a session was opened.
//   - SessionEnded (session.ended): a session was closed and memory
//     extraction results are available.
//   - SessionNotice (session.notice): a one-shot inline system message.
//   - SessionClockTick (session.clock_tick): the session duration advanced.
package events
