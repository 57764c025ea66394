// Package cqsml is a compact toolkit for variance-based analysis of
// labeled tabular data — load a table, standardize it, and decompose it
// into principal components.
//
// 🚀 What is cqs-machine-learning?
//
//	A small, deterministic library that brings together:
//		• dataset — delimited-text tables into dense gonum matrices, labels included
//		• scale   — zero-mean / unit-variance standardization with exact inversion
//		• pca     — covariance eigendecomposition, explained-variance bookkeeping,
//		            projection, whitening and rank-K reconstruction
//
// ✨ Why choose it?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable component ordering and sign orientation, no hidden randomness
//   - Grounded – built on gonum's mat/stat kernels, cross-checked against stat.PC
//   - Batteries included – the canonical Iris table ships embedded for instant experiments
//
// The subpackages:
//
//	dataset/ — Table type, Parse/Load, embedded Iris fixture
//	scale/   — Scaler: Fit, Transform, FitTransform, InverseTransform
//	pca/     — PCA: Fit, Transform, variance table, reconstruction error
//	cmd/     — pcarun, the end-to-end pipeline CLI with plots
//
// Quick pipeline sketch:
//
//	table → standardize → covariance → eigenpairs → top-K basis → scores
//
// Dive into examples/ for narrative walkthroughs and each package's
// example_test.go for runnable snippets.
//
//	go get github.com/alexthie/cqs-machine-learning
package cqsml
