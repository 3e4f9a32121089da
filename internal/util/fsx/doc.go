// Package fsx holds small filesystem helpers shared by the generators.
package fsx
