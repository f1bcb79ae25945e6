package store

import "errors"

var (
	// ErrNotFound : aucun enregistrement ne correspond à l'identifiant.
	ErrNotFound = errors.New("enregistrement introuvable")
	// ErrInvalidID : l'identifiant fourni n'est pas un ObjectID hexadécimal
	// bien formé. Distinct de ErrNotFound (400 vs 404 côté HTTP).
	ErrInvalidID = errors.New("identifiant invalide")
	// ErrAlreadyExists : sentinelle de l'inscription idempotente — un
	// utilisateur existe déjà avec cet email, rien n'a été inséré.
	ErrAlreadyExists = errors.New("utilisateur déjà enregistré")
)
