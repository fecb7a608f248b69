package ledger

// Contract function names.
const (
	FnAddCandidate  = "addCandidate"
	FnStartElection = "startElection"
	FnEndElection   = "endElection"
	FnRegisterVoter = "registerVoter"
	FnVote          = "vote"
	FnGetVotes      = "getVotes"
)

// contractABI is the subset of the election contract the service calls.
const contractABI = `[
  {"type":"function","name":"addCandidate","stateMutability":"nonpayable",
   "inputs":[{"name":"name","type":"string"},{"name":"party","type":"string"}],"outputs":[]},
  {"type":"function","name":"startElection","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"endElection","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"registerVoter","stateMutability":"nonpayable",
   "inputs":[{"name":"voter","type":"address"}],"outputs":[]},
  {"type":"function","name":"vote","stateMutability":"nonpayable",
   "inputs":[{"name":"candidateId","type":"uint256"},{"name":"nullifierHash","type":"bytes32"}],"outputs":[]},
  {"type":"function","name":"getVotes","stateMutability":"view",
   "inputs":[{"name":"candidateId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]}
]`
