// Package memory provides in-memory implementations of the storage driven
// ports. They back the default storage configuration and the service tests;
// nothing survives process exit.
package memory
