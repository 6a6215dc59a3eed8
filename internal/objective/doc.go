// Package objective implements the optional objective evaluation engine
// for dice chess levels.
//
// Levels carry authored objective definitions: a declarative condition, a
// description template and a gold reward, optionally varied per difficulty.
// The host game loop feeds session telemetry into a Tracking record and
// calls CheckAll at decision points; the engine reports which objectives
// just completed or failed, renders their display text and resolves the
// total bonus at settlement.
//
// Evaluation is pure and never fails: unknown condition kinds and
// malformed parameters degrade to an inert result plus a diagnostic
// notice. Completed and failed are terminal and mutually exclusive for
// the rest of the session.
package objective
