// Orchestrates a dictionary attack from its inputs to a match result
package runner

import (
	"context"
	"errors"

	"dictcrackr/hasher"
	"dictcrackr/hashfunc"
	"dictcrackr/retriever"
	"dictcrackr/source"

	log "github.com/visionmedia/go-cli-log"
)

var (
	// ErrWrongFlagCombination when the given inputs don't select any mode
	ErrWrongFlagCombination = errors.New("wrong combination of dictionary, hash function and passwords")
)

// Mode is picked from which inputs were given
type Mode int

const (
	ModeNone Mode = iota
	ModeDictionary
	ModeHashFunction
	ModePasswords
	ModeCrack
)

func (m Mode) String() string {
	switch m {
	case ModeDictionary:
		return "dictionary"
	case ModeHashFunction:
		return "hash-function"
	case ModePasswords:
		return "passwords"
	case ModeCrack:
		return "crack"
	default:
		return "none"
	}
}

type Options struct {
	Dictionary   string
	HashFunction string
	Passwords    string
	// Workers above one hashes the dictionary in that many shards
	Workers int
}

// Mode tells which operation the options ask for
func (o Options) Mode() Mode {
	d, h, p := o.Dictionary != "", o.HashFunction != "", o.Passwords != ""

	switch {
	case d && h && p:
		return ModeCrack
	case d && !h && !p:
		return ModeDictionary
	case h && !d && !p:
		return ModeHashFunction
	case p && !d && !h:
		return ModePasswords
	default:
		return ModeNone
	}
}

// Outcome of one run. Only the fields of the executed mode are set.
type Outcome struct {
	Mode         Mode
	Candidates   int
	HashFunction hashfunc.Kind
	Credentials  int
	Result       *retriever.MatchResult
}

type Runner struct {
	Loader *source.Loader
}

func New(loader *source.Loader) *Runner {
	return &Runner{Loader: loader}
}

// Run dispatches on the options' mode
func (r *Runner) Run(ctx context.Context, opts Options) (*Outcome, error) {
	mode := opts.Mode()

	switch mode {
	case ModeCrack:
		return r.crack(ctx, opts)

	case ModeDictionary:
		words, err := r.Loader.LoadWordlist(opts.Dictionary)
		if err != nil {
			return nil, err
		}
		log.Info("Dictionary", "Loaded %d candidates from %v", len(words), opts.Dictionary)
		return &Outcome{Mode: mode, Candidates: len(words)}, nil

	case ModeHashFunction:
		kind, err := hashfunc.Resolve(opts.HashFunction)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mode: mode, HashFunction: kind}, nil

	case ModePasswords:
		creds, err := r.loadCredentials(opts.Passwords)
		if err != nil {
			return nil, err
		}
		log.Info("Passwords", "Loaded %d login/hash pairs from %v", creds.Len(), opts.Passwords)
		return &Outcome{Mode: mode, Credentials: creds.Len()}, nil
	}

	return nil, ErrWrongFlagCombination
}

// Crack runs the full attack. The hash function is resolved and both inputs are
// checked for existence before anything is read.
func (r *Runner) Crack(ctx context.Context, opts Options) (*retriever.MatchResult, error) {
	outcome, err := r.crack(ctx, opts)
	if err != nil {
		return nil, err
	}

	return outcome.Result, nil
}

func (r *Runner) crack(ctx context.Context, opts Options) (*Outcome, error) {
	kind, err := hashfunc.Resolve(opts.HashFunction)
	if err != nil {
		return nil, err
	}

	// Nothing is downloaded until both inputs are known to exist
	err = r.Loader.Stat(
		source.Input{Kind: source.KindCredentials, Location: opts.Passwords},
		source.Input{Kind: source.KindWordlist, Location: opts.Dictionary},
	)
	if err != nil {
		return nil, err
	}

	// Credentials are small, reading them first catches a bad file before hashing a big dictionary
	creds, err := r.loadCredentials(opts.Passwords)
	if err != nil {
		return nil, err
	}

	words, err := r.Loader.LoadWordlist(opts.Dictionary)
	if err != nil {
		return nil, err
	}

	log.Info("Hashing", "Hashing %d candidates with %v", len(words), kind)

	var res *retriever.MatchResult
	if opts.Workers > 1 {
		shards, err := hasher.HashAllParallel(ctx, words, kind, opts.Workers)
		if err != nil {
			return nil, err
		}

		log.Info("Matching", "Matching %d credentials against %d shards", creds.Len(), len(shards))
		res, err = retriever.MatchShards(shards, creds)
		if err != nil {
			return nil, err
		}
	} else {
		records := hasher.HashAll(words, kind)

		log.Info("Matching", "Matching %d credentials", creds.Len())
		res, err = retriever.MatchAll(records, creds)
		if err != nil {
			return nil, err
		}
	}

	return &Outcome{
		Mode:         ModeCrack,
		Candidates:   len(words),
		HashFunction: kind,
		Credentials:  creds.Len(),
		Result:       res,
	}, nil
}

func (r *Runner) loadCredentials(location string) (retriever.CredentialSet, error) {
	creds, err := r.Loader.LoadCredentials(location)
	if err != nil {
		return retriever.CredentialSet{}, err
	}

	if err := creds.Validate(); err != nil {
		return retriever.CredentialSet{}, err
	}

	return creds, nil
}
