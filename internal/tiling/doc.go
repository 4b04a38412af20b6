// Package tiling computes window placement: the cascade used when windows
// open, the cascade and tile arrangements, and maximized bounds.
package tiling
