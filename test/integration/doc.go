// Package integration provides integration tests for the TOBJ library.
//
// Package: integration
// Title: TOBJ Module Integration Tests
// Description: This package contains integration tests that verify the correct
//              interaction between the TOBJ engine, the document model, the
//              format converters and the configuration loader, ensuring
//              consistent behavior, error handling, and performance
//              characteristics across package boundaries.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of integration test suite
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Parse, inspect, mutate, serialize and reparse flows through the facade
// - Format bridge round trips (TOBJ -> JSON/YAML/TOML -> TOBJ)
// - Configuration files flowing through the engine and back
// - Error propagation from the parser through the facade into config
// - Realistic end-to-end scenarios over temporary files
//
// Error Integration Tests (error_integration_test.go):
// - Structured error format compliance across all packages
// - Severity level consistency per error code
// - Error code pattern verification
// - Error wrapping and unwrapping through package boundaries
// - Position and context preservation in error chains
//
// Performance Integration Tests (performance_test.go):
// - Parse and serialize benchmarks, alone and as round trips
// - Document construction and access benchmarks
// - Conversion and configuration read benchmarks
// - Memory allocation analysis
// - Scalability with growing document sizes
// - Concurrency verification for the stateless call paths
//
// Test Coverage:
//
// The integration tests cover the following critical integration points:
//
// 1. Engine and Document Integration:
//    - Parsed documents expose the structure the notation describes
//    - Mutations made through the document API survive serialization
//    - Canonical output reparses into an equal document
//
// 2. Format Bridges:
//    - Documents round-trip through JSON, YAML and TOML
//    - Number normalization keeps integer and float kinds stable
//    - Unsupported formats fail with structured errors
//
// 3. Configuration Integration:
//    - Config files parse through the same engine as direct loads
//    - Struct binding reflects the parsed document
//    - Malformed configuration surfaces the underlying parse failure
//
// 4. Error Handling Integration:
//    - All packages return structured errors with codes and operations
//    - Parse positions survive the facade wrapping
//    - Root causes stay reachable through the error chain
//
// Running Integration Tests:
//
// To run all integration tests:
//   go test -v ./test/integration/
//
// To run specific test categories:
//   go test -v ./test/integration/ -run TestEngineDocumentFlow
//   go test -v ./test/integration/ -run TestFormatBridge
//   go test -v ./test/integration/ -run TestErrorPropagation
//
// To run performance benchmarks:
//   go test -v ./test/integration/ -bench=.
//   go test -v ./test/integration/ -bench=BenchmarkParse
//
// Dependencies:
//
// These integration tests depend on:
// - tobj: the engine facade
// - tobj/document: the document model
// - tobj/parser: parse error types
// - tobj/convert: format bridges
// - config: the configuration loader
// - core/error: the structured error framework
//
// Best Practices:
//
// 1. Integration tests focus on package boundaries, not internals
// 2. Test realistic notation and data flows
// 3. Verify error propagation and position preservation
// 4. Include performance verification for the hot paths
// 5. Test both success and failure scenarios
//
package integration
