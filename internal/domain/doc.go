// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// The central entity is ProgressRecord: the per-user, per-card mastery state
// that the study engine reads when choosing the next card and rewrites when a
// learner answers.
package domain
