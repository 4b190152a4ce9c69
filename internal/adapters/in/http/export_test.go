package http

// MapDomainError exposes the error mapper to the package tests.
var MapDomainError = mapDomainError
