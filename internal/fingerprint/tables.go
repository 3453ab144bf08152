package fingerprint

// Process-wide read-only lexicons. Korean and English entries live side by
// side so a mixed corpus still produces signal; classification of which
// language a token belongs to is the morphology strategy's job.

var stopwords = map[string]bool{
	// English
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "to": true,
	"of": true, "in": true, "on": true, "for": true, "with": true, "at": true,
	"it": true, "this": true, "that": true, "i": true, "you": true, "we": true,
	"my": true, "your": true, "so": true, "not": true, "just": true, "do": true,
	"have": true, "can": true, "will": true, "all": true, "if": true, "as": true,
	// Korean particles and fillers
	"그": true, "이": true, "저": true, "것": true, "수": true, "더": true,
	"좀": true, "잘": true, "안": true, "못": true, "왜": true, "뭐": true,
	"내": true, "네": true, "나": true, "너": true, "우리": true, "제": true,
	"있다": true, "없다": true, "하다": true, "되다": true, "이다": true,
	"하는": true, "있는": true, "합니다": true, "있습니다": true,
}

var conjunctions = map[string]bool{
	// Korean
	"그리고": true, "그래서": true, "하지만": true, "그런데": true, "그러나": true,
	"또한": true, "또": true, "그러면": true, "그럼": true, "왜냐하면": true,
	"근데": true, "따라서": true, "그래도": true, "게다가": true, "하지만은": true,
	// English
	"and": true, "but": true, "so": true, "because": true, "however": true,
	"also": true, "yet": true, "therefore": true, "although": true, "plus": true,
}

// emotionMarkers maps an emotion label to its lexical cues.
var emotionMarkers = map[string][]string{
	"excitement": {"대박", "미쳤", "진짜", "완전", "최고", "짱", "헐", "wow", "amazing", "insane", "incredible", "love"},
	"anger":      {"짜증", "화나", "최악", "어이없", "빡치", "답답", "hate", "terrible", "awful", "ridiculous", "worst"},
	"curiosity":  {"궁금", "왜", "어떻게", "뭘까", "할까", "과연", "why", "how", "what if", "wonder", "curious"},
	"confidence": {"확실", "분명", "무조건", "반드시", "절대", "당연", "definitely", "certainly", "guarantee", "always", "never"},
	"humor":      {"ㅋㅋ", "ㅋㅋㅋ", "ㅎㅎ", "웃긴", "개그", "드립", "lol", "lmao", "haha", "funny"},
	"empathy":    {"힘들", "괜찮", "수고", "응원", "공감", "위로", "고생", "feel you", "been there", "understand", "sorry"},
}

// authorityMarkers signal an instructing, certain voice.
var authorityMarkers = []string{
	"하세요", "하라", "해야", "해라", "마세요", "필수", "무조건", "반드시", "절대",
	"확실히", "분명히", "당연히", "핵심은",
	"you should", "you must", "you need to", "do this", "stop doing",
	"always", "never", "the key is", "remember",
}

// peerMarkers signal a hedging, level voice.
var peerMarkers = []string{
	"같아요", "같다", "아닐까", "듯", "아마", "혹시", "개인적으로", "것 같",
	"생각해요", "어떨까요",
	"i think", "maybe", "perhaps", "i guess", "in my opinion", "imo",
	"might", "probably", "not sure",
}

// ctaPhrases are explicit calls to act on the post.
var ctaPhrases = []string{
	"댓글", "남겨주세요", "알려주세요", "팔로우", "공유", "리트윗", "저장",
	"북마크", "구독",
	"comment", "reply", "follow", "share", "retweet", "bookmark",
	"let me know", "tell me", "dm me",
}

// storyMarkers open a narrative.
var storyMarkers = []string{
	"어제", "오늘", "예전에", "그때", "얼마 전", "작년", "몇 년 전", "처음",
	"yesterday", "today", "last year", "once", "when i", "years ago", "back in",
}

// contrastMarkers flip expectations.
var contrastMarkers = []string{
	"하지만", "그런데", "사실", "근데", "반대로", "의외로", "다들 ~라지만",
	"but", "actually", "however", "everyone thinks", "most people", "in reality",
	"contrary to",
}

// mysteryMarkers withhold the point.
var mysteryMarkers = []string{
	"비밀", "아무도", "숨겨진", "모르는", "알려지지 않은",
	"nobody talks about", "no one tells you", "the secret", "hidden", "what they don't",
}

// boldClaimMarkers assert without hedging.
var boldClaimMarkers = []string{
	"절대", "무조건", "반드시", "최고의", "유일한", "가장 중요한",
	"never", "always", "the only", "the best", "the most important", "will change",
}

// directAddressMarkers speak straight at the reader.
var directAddressMarkers = []string{
	"여러분", "당신", "너희", "님들",
	"you ", "your ", "hey ", "listen",
}

// conclusionFirstMarkers put the verdict before the reasoning.
var conclusionFirstMarkers = []string{
	"결론부터", "결론은", "한줄요약", "요약하면",
	"bottom line", "tldr", "conclusion first", "short version",
}

// buildUpMarkers enumerate toward a point.
var buildUpMarkers = []string{
	"첫째", "둘째", "셋째", "마지막으로", "우선", "그 다음",
	"first", "second", "third", "finally", "step 1", "then",
}

// fillerWords are low-content discourse padding worth surfacing when they
// recur.
var fillerWords = map[string]bool{
	"진짜": true, "완전": true, "약간": true, "그냥": true, "되게": true,
	"막": true, "좀": true, "딱": true, "아무튼": true, "일단": true,
	"literally": true, "basically": true, "honestly": true, "actually": true,
	"like": true, "just": true, "really": true, "kinda": true,
}

// informalContractions are apostrophe-dropped or shorthand forms that mark
// casual typing. Korean laughter/crying marks count as well.
var informalContractions = []string{
	"dont", "cant", "wont", "isnt", "didnt", "im", "ive", "youre", "theyre",
	"idk", "tbh", "rn", "ngl", "btw",
	"ㅋㅋ", "ㅎㅎ", "ㅠㅠ", "ㄹㅇ", "ㅇㅈ", "ㄱㄱ",
}

// hookTriggerWords are attention markers scored by the ranker as well; the
// extractor uses them only indirectly via opening classification.
var questionWords = []string{
	"왜", "어떻게", "뭐", "무엇", "언제", "어디", "누가", "얼마나",
	"why", "how", "what", "when", "where", "who",
}
