package main

type topicSeed struct {
	Name        string
	Description string
	Icon        string
	Color       string
}

type faqSeed struct {
	Question string
	Answer   string
	Keywords []string
	Topic    string
}

type noteSeed struct {
	Title    string
	Content  string
	Keywords []string
	Topic    string
}

type questionSeed struct {
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

type quizSeed struct {
	Title       string
	Description string
	Topic       string
	Questions   []questionSeed
}

var courseTopics = []topicSeed{
	{Name: "Programming Basics", Description: "Fundamental concepts of programming and coding", Icon: "💻", Color: "#3B82F6"},
	{Name: "Algorithms", Description: "Step-by-step procedures for solving problems", Icon: "🧮", Color: "#10B981"},
	{Name: "Data Structures", Description: "Ways to organize and store data efficiently", Icon: "🗂️", Color: "#F59E0B"},
	{Name: "Computer Architecture", Description: "Hardware components and how computers work", Icon: "🔧", Color: "#EF4444"},
	{Name: "Operating Systems", Description: "System software that manages computer hardware", Icon: "🖥️", Color: "#8B5CF6"},
	{Name: "Networking", Description: "How computers communicate and share data", Icon: "🌐", Color: "#06B6D4"},
	{Name: "Software Development", Description: "Process of creating software applications", Icon: "🚀", Color: "#EC4899"},
	{Name: "Database Systems", Description: "Organized collections of data and their management", Icon: "🗄️", Color: "#84CC16"},
}

var courseFAQs = []faqSeed{
	{
		Question: "What is a programming language?",
		Answer:   "A programming language is a formal language designed to communicate instructions to a computer. It provides a way to write programs that can be executed by a computer to perform specific tasks. Examples include Python, Java, C++, and JavaScript. Programming languages have syntax (rules for writing code) and semantics (meaning of the code).",
		Keywords: []string{"programming language", "code", "syntax", "semantics"},
		Topic:    "Programming Basics",
	},
	{
		Question: "What are variables in programming?",
		Answer:   "Variables are containers for storing data values. In programming, a variable is a named location in memory that holds a value which can be changed during program execution. Variables have a name (identifier), a data type (like integer, string, boolean), and a value. For example: int age = 25; or string name = \"John\";",
		Keywords: []string{"variable", "data", "memory", "identifier", "data type"},
		Topic:    "Programming Basics",
	},
	{
		Question: "What is the difference between compiled and interpreted languages?",
		Answer:   "Compiled languages (like C, C++, Go) are translated directly into machine code by a compiler before execution, resulting in faster performance. Interpreted languages (like Python, JavaScript, Ruby) are executed line-by-line by an interpreter at runtime, making them more flexible but generally slower. Some languages like Java use both compilation and interpretation.",
		Keywords: []string{"compiled", "interpreted", "compiler", "interpreter", "execution"},
		Topic:    "Programming Basics",
	},
	{
		Question: "What is an algorithm?",
		Answer:   "An algorithm is a finite sequence of well-defined, computer-implementable instructions, typically to solve a class of problems or to perform a computation. Algorithms are the foundation of computer programming and are used for tasks like sorting data, searching information, and performing calculations.",
		Keywords: []string{"algorithm", "instructions", "problem solving", "computation"},
		Topic:    "Algorithms",
	},
	{
		Question: "What is time complexity in algorithms?",
		Answer:   "Time complexity is a measure of the amount of time an algorithm takes to run as a function of the length of its input. It's typically expressed using Big O notation, which describes the upper bound of the growth rate. Common time complexities include O(1) constant, O(log n) logarithmic, O(n) linear, O(n log n) linearithmic, O(n²) quadratic, and O(2^n) exponential.",
		Keywords: []string{"time complexity", "big o", "efficiency", "performance", "analysis"},
		Topic:    "Algorithms",
	},
	{
		Question: "What is an array?",
		Answer:   "An array is a data structure that stores a fixed-size sequential collection of elements of the same type. Arrays are indexed, meaning each element has a numerical index (starting from 0) that allows direct access to any element. Arrays are used for storing multiple values in a single variable and are fundamental in programming.",
		Keywords: []string{"array", "collection", "index", "elements", "fixed-size"},
		Topic:    "Data Structures",
	},
	{
		Question: "What is a linked list?",
		Answer:   "A linked list is a linear data structure where elements are not stored at contiguous memory locations. Instead, each element (node) contains a data field and a reference (link) to the next node in the sequence. Linked lists allow efficient insertion and deletion of elements but have slower access times compared to arrays.",
		Keywords: []string{"linked list", "node", "pointer", "dynamic", "sequence"},
		Topic:    "Data Structures",
	},
	{
		Question: "What is the CPU?",
		Answer:   "The Central Processing Unit (CPU) is the primary component of a computer that performs most of the processing. It's often called the \"brain\" of the computer. The CPU executes instructions from programs, performs arithmetic and logical operations, and manages data flow between other components. Key parts of the CPU include the Arithmetic Logic Unit (ALU), Control Unit, and registers.",
		Keywords: []string{"cpu", "processor", "alu", "control unit", "brain"},
		Topic:    "Computer Architecture",
	},
	{
		Question: "What is RAM?",
		Answer:   "Random Access Memory (RAM) is a type of computer memory that can be read and changed in any order. It's used to store working data and machine code currently in use. RAM is volatile, meaning it loses its contents when the computer is turned off. More RAM generally allows a computer to work with more information at the same time, improving performance.",
		Keywords: []string{"ram", "memory", "volatile", "storage", "working data"},
		Topic:    "Computer Architecture",
	},
	{
		Question: "What is an operating system?",
		Answer:   "An operating system (OS) is system software that manages computer hardware and software resources and provides common services for computer programs. The OS acts as an intermediary between users and computer hardware. Major functions include process management, memory management, file systems, device control, and networking. Examples include Windows, macOS, Linux, iOS, and Android.",
		Keywords: []string{"operating system", "os", "system software", "resource management", "windows"},
		Topic:    "Operating Systems",
	},
	{
		Question: "What is the Internet Protocol (IP)?",
		Answer:   "The Internet Protocol (IP) is the principal set of rules for routing and addressing data packets across networks so that they can reach their destinations. IP addresses are numerical labels assigned to each device connected to a computer network. The two main versions are IPv4 (32-bit addresses) and IPv6 (128-bit addresses). IP works with TCP to form TCP/IP, the foundation of internet communication.",
		Keywords: []string{"ip", "internet protocol", "addressing", "routing", "tcp/ip"},
		Topic:    "Networking",
	},
}

var courseNotes = []noteSeed{
	{
		Title: "Introduction to Programming Languages",
		Content: `Programming languages are formal languages designed to communicate instructions to a computer. They are the foundation of software development and enable developers to create applications, websites, and systems.

There are several types of programming languages:

1. High-Level Languages: These are closer to human language and easier to read and write. Examples include Python, Java, and JavaScript. They abstract away complex hardware details.

2. Low-Level Languages: These are closer to machine code and provide more direct control over hardware. Examples include Assembly and Machine Code.

3. Compiled Languages: These are translated directly into machine code before execution. Examples include C, C++, and Go. They typically offer better performance.

4. Interpreted Languages: These are executed line-by-line by an interpreter at runtime. Examples include Python, JavaScript, and Ruby. They offer more flexibility.

When choosing a programming language, consider factors like project requirements and scope, performance needs, development time and ease of use, community support and available libraries, and the target platform.`,
		Keywords: []string{"programming language", "high-level", "low-level", "compiled", "interpreted", "software development"},
		Topic:    "Programming Basics",
	},
	{
		Title: "Understanding Variables and Data Types",
		Content: `Variables are fundamental building blocks in programming that store data values. Think of them as containers that hold information which can be changed during program execution.

Variable declaration specifies the variable's name and type; initialization assigns an initial value.

Common data types:

1. Integer: Whole numbers without decimal points, like 42, -17, 0. Used for counting, indexing, and mathematical operations.

2. Floating-Point: Numbers with decimal points, like 3.14 or -0.5. Used for precise calculations and measurements.

3. String: A sequence of characters, like "Hello, World!" or "John Doe". Used for text manipulation and display.

4. Boolean: Logical values representing true or false. Used for conditional logic and decision making.

5. Character: Single alphanumeric symbols, like 'A' or '7'. Used for text processing.

Naming conventions: use descriptive names that indicate the variable's purpose, start with a letter or underscore, avoid spaces and special characters, and follow camelCase or snake_case consistently.

Best practices: initialize variables when declaring them, use appropriate data types, keep variable scope as small as possible, and use constants for values that do not change.`,
		Keywords: []string{"variables", "data types", "integer", "string", "boolean", "float", "character", "declaration"},
		Topic:    "Programming Basics",
	},
	{
		Title: "Introduction to Algorithms and Problem Solving",
		Content: `An algorithm is a step-by-step procedure for solving a problem or accomplishing a task. In computer science, algorithms are the foundation of all computational processes.

Key characteristics of good algorithms:

1. Finiteness: An algorithm must always terminate after a finite number of steps.
2. Well-Defined: Each step must be precisely defined and unambiguous.
3. Input: An algorithm takes zero or more inputs.
4. Output: An algorithm produces at least one output.
5. Effectiveness: Every instruction must be basic enough that it can be carried out.

The design process runs through problem analysis (identify inputs, outputs, constraints and edge cases), algorithm development (break the problem into smaller subproblems and design the logic flow), implementation (choose data structures and add error handling), and testing (verify correctness with various inputs and edge cases).

Common categories include sorting algorithms (Bubble Sort, Quick Sort, Merge Sort), searching algorithms (Linear Search, Binary Search), graph algorithms (Breadth-First Search, Depth-First Search, Dijkstra's Algorithm), and dynamic programming (Fibonacci, Knapsack, Longest Common Subsequence).

Algorithm analysis covers time complexity (how runtime grows with input size), space complexity (how memory usage grows), and Big O notation for describing both.`,
		Keywords: []string{"algorithm", "problem solving", "complexity", "big o", "design", "analysis", "optimization", "efficiency"},
		Topic:    "Algorithms",
	},
	{
		Title: "Arrays: The Fundamental Data Structure",
		Content: `Arrays are one of the most fundamental and widely used data structures in computer science. They store elements in contiguous memory locations, allowing efficient access to elements by their index.

Key characteristics: fixed size determined at creation, contiguous memory, O(1) random access by index, and homogeneous elements of the same type.

Operation complexities: access by index is O(1); search is O(n) with linear search or O(log n) with binary search on a sorted array; insertion and deletion are O(n) because elements must shift, except at the end where they are O(1).

Types of arrays include one-dimensional arrays (a simple list), multi-dimensional arrays (arrays of arrays, like matrices), and dynamic arrays that grow and shrink automatically, such as ArrayList in Java or list in Python.

Advantages: fast random access, cache-friendly contiguous memory, simple implementation, and no extra storage for pointers.

Disadvantages: fixed size in most implementations, costly insertion and deletion, possible wasted memory, and poor fit for data that changes size frequently.

Use arrays when the number of elements is known in advance, be mindful of bounds, and prefer dynamic arrays when the size is unknown.`,
		Keywords: []string{"array", "data structure", "index", "access", "search", "sort", "complexity", "memory"},
		Topic:    "Data Structures",
	},
	{
		Title: "Linked Lists: Dynamic Data Structures",
		Content: `Linked lists are linear data structures where elements are not stored in contiguous memory locations. Each element (node) holds its data and a reference to the next node in the sequence.

Types of linked lists:

1. Singly Linked List: each node points to the next node; traversal is one-directional.
2. Doubly Linked List: each node points to both next and previous nodes, allowing bidirectional traversal at the cost of extra memory.
3. Circular Linked List: the last node points back to the first; useful when circular access is needed.

Operation complexities: insertion and deletion are O(1) at the head and O(n) elsewhere, since only pointers change. Search and access by index are O(n) because the list must be traversed from the head.

Advantages: dynamic size, efficient insertion and deletion, no wasted memory, and a natural base for implementing stacks and queues.

Disadvantages: no random access, extra memory for pointers, non-contiguous memory that is not cache-friendly, and more complex implementation.

Always handle the edge cases of an empty list and a single node, and consider dummy nodes to simplify insertion and deletion.`,
		Keywords: []string{"linked list", "node", "pointer", "dynamic", "insertion", "deletion", "singly", "doubly"},
		Topic:    "Data Structures",
	},
}

var courseQuizzes = []quizSeed{
	{
		Title:       "Programming Basics Quiz",
		Description: "Test your knowledge of fundamental programming concepts",
		Topic:       "Programming Basics",
		Questions: []questionSeed{
			{
				Question:      "What is the purpose of a variable in programming?",
				Options:       []string{"To store data values", "To execute code", "To display output", "To connect to the internet"},
				CorrectAnswer: 0,
				Explanation:   "Variables are used to store data values that can be referenced and manipulated in a program.",
			},
			{
				Question:      "Which of the following is NOT a programming language?",
				Options:       []string{"Python", "HTML", "Java", "C++"},
				CorrectAnswer: 1,
				Explanation:   "HTML is a markup language used for creating web pages, not a programming language.",
			},
			{
				Question:      "What does \"syntax\" refer to in programming?",
				Options:       []string{"The meaning of the code", "The rules for writing code", "The speed of execution", "The memory usage"},
				CorrectAnswer: 1,
				Explanation:   "Syntax refers to the set of rules that define correctly structured programs in a language.",
			},
		},
	},
	{
		Title:       "Algorithms Quiz",
		Description: "Challenge yourself with algorithm concepts and complexity",
		Topic:       "Algorithms",
		Questions: []questionSeed{
			{
				Question:      "What is the time complexity of binary search?",
				Options:       []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
				CorrectAnswer: 1,
				Explanation:   "Binary search has O(log n) time complexity because it halves the search space with each comparison.",
			},
			{
				Question:      "Which sorting algorithm has the best average-case time complexity?",
				Options:       []string{"Bubble Sort", "Quick Sort", "Selection Sort", "Insertion Sort"},
				CorrectAnswer: 1,
				Explanation:   "Quick Sort has an average-case time complexity of O(n log n), better than the O(n²) of the other options.",
			},
			{
				Question:      "What does Big O notation represent?",
				Options:       []string{"The exact runtime of an algorithm", "The worst-case time complexity", "The memory usage", "The number of lines of code"},
				CorrectAnswer: 1,
				Explanation:   "Big O notation describes the upper bound or worst-case scenario of an algorithm's time complexity.",
			},
		},
	},
	{
		Title:       "Data Structures Quiz",
		Description: "Test your understanding of how data is organized and stored",
		Topic:       "Data Structures",
		Questions: []questionSeed{
			{
				Question:      "Which data structure follows the LIFO principle?",
				Options:       []string{"Queue", "Stack", "Array", "Linked List"},
				CorrectAnswer: 1,
				Explanation:   "Stack follows the Last In First Out (LIFO) principle, where the last element added is the first one removed.",
			},
			{
				Question:      "What is the main advantage of a hash table?",
				Options:       []string{"Ordered data storage", "Constant time complexity for operations", "Memory efficiency", "Simple implementation"},
				CorrectAnswer: 1,
				Explanation:   "Hash tables provide average O(1) time complexity for insert, delete, and search operations.",
			},
			{
				Question:      "In a binary search tree, where is the left child of a node located?",
				Options:       []string{"Always at the beginning", "With a value greater than the parent", "With a value less than the parent", "At the same level"},
				CorrectAnswer: 2,
				Explanation:   "In a binary search tree, the left child contains a value less than its parent's value.",
			},
		},
	},
	{
		Title:       "Computer Architecture Quiz",
		Description: "Explore the hardware components that make up a computer",
		Topic:       "Computer Architecture",
		Questions: []questionSeed{
			{
				Question:      "Which component is responsible for performing arithmetic and logical operations?",
				Options:       []string{"Control Unit", "ALU", "RAM", "Cache"},
				CorrectAnswer: 1,
				Explanation:   "The Arithmetic Logic Unit (ALU) performs arithmetic and logical operations in the CPU.",
			},
			{
				Question:      "What is the purpose of cache memory?",
				Options:       []string{"Permanent storage", "Fast temporary storage for frequently accessed data", "Connecting peripherals", "Managing power consumption"},
				CorrectAnswer: 1,
				Explanation:   "Cache memory stores frequently accessed data to reduce the time needed to reach main memory.",
			},
			{
				Question:      "Which of the following is volatile memory?",
				Options:       []string{"SSD", "HDD", "RAM", "ROM"},
				CorrectAnswer: 2,
				Explanation:   "RAM is volatile memory and loses its contents when power is turned off.",
			},
		},
	},
}
